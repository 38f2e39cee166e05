package config

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/dshills/edconf/internal/config/loader"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

type testEnv struct {
	reg  *Registry
	fs   *loader.MemFS
	logs *bytes.Buffer
}

// newTestEnv builds a loaded registry whose defaults live in /defaults and
// user files in /user on one MemFS. Map keys are domain names.
func newTestEnv(t testingT, defaults, user map[string]string) *testEnv {
	t.Helper()

	fsys := loader.NewMemFS()
	for name, content := range defaults {
		fsys.AddFile("/defaults/config-"+name+".def", content)
	}
	for name, content := range user {
		fsys.AddFile("/user/config-"+name+".cfg", content)
	}

	var buf bytes.Buffer
	reg, err := New(
		WithDefaults(fsys, "/defaults"),
		WithUserFS(fsys),
		WithUserDir("/user"),
		WithLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})),
	)
	require.NoError(t, err)
	require.NoError(t, reg.LoadAll())

	return &testEnv{reg: reg, fs: fsys, logs: &buf}
}
