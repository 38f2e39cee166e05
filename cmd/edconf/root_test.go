package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dshills/edconf/internal/config"
	"github.com/dshills/edconf/internal/config/loader"
)

// runCLI executes edconf with user files on fsys and returns stdout.
func runCLI(t *testing.T, fsys *loader.MemFS, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := newCLI(&stdout, &stderr)
	c.userFS = fsys

	root := newRootCmd(c)
	root.SetArgs(append([]string{"--user-dir", "/user"}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestGet(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/user/config-main.cfg", "[EditorWindow]\nwidth= 120\n")

	out, err := runCLI(t, fsys, "get", "main", "EditorWindow", "width", "--kind", "int")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)

	out, err = runCLI(t, fsys, "get", "main", "EditorWindow", "missing", "-d", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback\n", out)

	out, err = runCLI(t, fsys, "get", "main", "EditorWindow", "width", "--show-source")
	require.NoError(t, err)
	assert.Equal(t, "120\t(user)\n", out)

	out, err = runCLI(t, fsys, "get", "main", "EditorWindow", "height", "--show-source")
	require.NoError(t, err)
	assert.Equal(t, "40\t(default)\n", out)

	_, err = runCLI(t, fsys, "get", "colours", "EditorWindow", "width")
	assert.Error(t, err)

	_, err = runCLI(t, fsys, "get", "main", "EditorWindow", "width", "--kind", "float")
	assert.ErrorIs(t, err, config.ErrUnknownValueKind)
}

func TestGet_UnparsableValueReportsFallback(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/user/config-main.cfg", "[EditorWindow]\nwidth= wide\n")

	out, err := runCLI(t, fsys, "get", "main", "EditorWindow", "width", "--kind", "int", "-d", "7", "--show-source")
	require.NoError(t, err)
	assert.Equal(t, "7\t(fallback)\n", out)

	out, err = runCLI(t, fsys, "get", "main", "EditorWindow", "width", "--show-source")
	require.NoError(t, err)
	assert.Equal(t, "wide\t(user)\n", out)
}

func TestSections(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/user/config-highlight.cfg", "[Midnight]\nnormal-foreground= #eeeeee\n")

	out, err := runCLI(t, fsys, "sections", "highlight", "--source", "user")
	require.NoError(t, err)
	assert.Equal(t, "Midnight\n", out)

	out, err = runCLI(t, fsys, "sections", "highlight", "-o", "json")
	require.NoError(t, err)
	var decoded map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []string{"IDLE Classic", "IDLE New"}, decoded["sections"])
}

func TestTheme(t *testing.T) {
	fsys := loader.NewMemFS()

	out, err := runCLI(t, fsys, "theme", "-o", "yaml")
	require.NoError(t, err)
	var decoded map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Contains(t, decoded, "IDLE Classic")
	assert.Len(t, decoded["IDLE Classic"], 25)
	assert.Equal(t, "#ff7700", decoded["IDLE Classic"]["keyword-foreground"])

	out, err = runCLI(t, fsys, "theme", "IDLE Classic", "--element", "cursor", "--sel", "bg")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff\n", out)

	_, err = runCLI(t, fsys, "theme", "--element", "cursor", "--sel", "middle")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	fsys := loader.NewMemFS()

	out, err := runCLI(t, fsys, "keys", "IDLE Classic Windows")
	require.NoError(t, err)
	assert.Contains(t, out, "[IDLE Classic Windows]\n")
	assert.Contains(t, out, "<<copy>> = <Control-Key-c> <Control-Key-C>\n")
	assert.Contains(t, out, "<<run-module>> = <Key-F5>\n")

	out, err = runCLI(t, fsys, "keys", "--core", "-o", "toml")
	require.NoError(t, err)
	assert.NotContains(t, out, "run-module")
}

func TestExtensions(t *testing.T) {
	fsys := loader.NewMemFS()

	out, err := runCLI(t, fsys, "extensions")
	require.NoError(t, err)
	assert.NotContains(t, out, "ParenMatch")
	assert.Contains(t, out, "CallTips\n")

	out, err = runCLI(t, fsys, "extensions", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "ParenMatch\n")

	out, err = runCLI(t, fsys, "extensions", "ScriptBinding")
	require.NoError(t, err)
	assert.Contains(t, out, "<<check-module>> = <Alt-Key-x>\n")

	_, err = runCLI(t, fsys, "extensions", "Nope")
	assert.Error(t, err)
}

func TestSetAndUnset(t *testing.T) {
	fsys := loader.NewMemFS()

	_, err := runCLI(t, fsys, "set", "main", "Theme", "name", "IDLE New")
	require.NoError(t, err)
	data, err := fsys.ReadFile("/user/config-main.cfg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "IDLE New")

	out, err := runCLI(t, fsys, "get", "main", "Theme", "name")
	require.NoError(t, err)
	assert.Equal(t, "IDLE New\n", out)

	_, err = runCLI(t, fsys, "unset", "main", "Theme", "name")
	require.NoError(t, err)
	assert.False(t, fsys.Exists("/user/config-main.cfg"))
}

func TestSet_TOMLFormat(t *testing.T) {
	fsys := loader.NewMemFS()

	_, err := runCLI(t, fsys, "--format", "toml", "set", "keys", "Mine", "copy", "<Control-Key-k>")
	require.NoError(t, err)
	assert.True(t, fsys.Exists("/user/config-keys.toml"))

	out, err := runCLI(t, fsys, "--format", "toml", "keys", "Mine", "--core")
	require.NoError(t, err)
	assert.Contains(t, out, "<<copy>> = <Control-Key-k>\n")
}

func TestHelpSources(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/user/config-main.cfg", "[HelpFiles]\n1= Go Tour;https://go.dev/tour\n")

	out, err := runCLI(t, fsys, "help-sources")
	require.NoError(t, err)
	assert.Equal(t, "Go Tour\thttps://go.dev/tour\n", out)
}

func TestUnknownOutput(t *testing.T) {
	_, err := runCLI(t, loader.NewMemFS(), "sections", "main", "-o", "xml")
	assert.ErrorIs(t, err, errUnknownOutput)
}
