package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent(t *testing.T) {
	assert.Equal(t, "<<copy>>", Event("copy"))
	assert.Equal(t, "<<copy>>", Event("<<copy>>"))
	assert.Equal(t, "copy", EventName("<<copy>>"))
	assert.Equal(t, "copy", EventName("copy"))
}

func TestKeySet_OrderAndCopies(t *testing.T) {
	ks := NewKeySet()
	ks.Set("b", []string{"<Key-b>"})
	ks.Set("<<a>>", []string{"<Key-a>"})
	ks.Set("b", []string{"<Key-B>"})

	assert.Equal(t, []string{"<<b>>", "<<a>>"}, ks.Events())

	chords, ok := ks.Get("b")
	require.True(t, ok)
	chords[0] = "<Key-x>"
	again, _ := ks.Get("b")
	assert.Equal(t, []string{"<Key-B>"}, again)

	clone := ks.Clone()
	clone.Set("c", nil)
	assert.Equal(t, 2, ks.Len())
	assert.Equal(t, 3, clone.Len())

	assert.True(t, ks.Claimed([]string{"<Key-a>"}))
	assert.False(t, ks.Claimed([]string{"<Key-a>", "<Key-b>"}))
	assert.False(t, ks.Claimed(nil))
}

func TestKeySetResolver_CoreKeys(t *testing.T) {
	env := newTestEnv(t,
		map[string]string{"keys": "[Emacs]\ncopy= <Alt-Key-w> <Meta-Key-w>\n"},
		map[string]string{"keys": "[Emacs]\npaste= <Control-Key-y>\n"},
	)
	keys := env.reg.Keys()
	env.logs.Reset()

	baseline := keys.CoreKeys("")
	assert.Equal(t, len(baselineKeys), baseline.Len())
	assert.Empty(t, env.logs.String())

	ks := keys.CoreKeys("Emacs")
	assert.Equal(t, len(baselineKeys), ks.Len())
	copyKeys, _ := ks.Get("copy")
	assert.Equal(t, []string{"<Alt-Key-w>", "<Meta-Key-w>"}, copyKeys)
	paste, _ := ks.Get("paste")
	assert.Equal(t, []string{"<Control-Key-y>"}, paste)
	nl, _ := ks.Get("newline-and-indent")
	assert.Equal(t, []string{"<Key-Return>", "<Key-KP_Enter>"}, nl)

	assert.Contains(t, env.logs.String(), "key binding missing")
}

func TestKeySetResolver_ExtensionCollisionIsBlanked(t *testing.T) {
	env := newTestEnv(t,
		map[string]string{
			"main":       "[Keys]\nname= Test\n",
			"keys":       "[Test]\ncopy= <Control-c>\n",
			"extensions": "[MyExt]\nenable= 1\n[MyExt_cfgBindings]\nmy-command= <Control-c>\nother-command= <Control-Key-F9>\n",
		},
		nil,
	)

	ks := env.reg.Keys().Current()

	mine, ok := ks.Get("my-command")
	require.True(t, ok, "colliding event stays present")
	assert.Empty(t, mine)

	copyKeys, _ := ks.Get("copy")
	assert.Equal(t, []string{"<Control-c>"}, copyKeys)

	other, _ := ks.Get("other-command")
	assert.Equal(t, []string{"<Control-Key-F9>"}, other)
}

func TestKeySetResolver_FirstExtensionByNameWins(t *testing.T) {
	env := newTestEnv(t,
		map[string]string{
			"extensions": "[Zeta]\n[Zeta_cfgBindings]\nzeta-run= <Key-F6>\n" +
				"[Alpha]\n[Alpha_cfgBindings]\nalpha-run= <Key-F6>\n",
		},
		nil,
	)

	ks := env.reg.Keys().Resolve("")
	alpha, _ := ks.Get("alpha-run")
	zeta, _ := ks.Get("zeta-run")
	assert.Equal(t, []string{"<Key-F6>"}, alpha)
	assert.Empty(t, zeta)
}

func TestKeySetResolver_DisabledExtensionsIgnored(t *testing.T) {
	env := newTestEnv(t,
		map[string]string{"extensions": "[Off]\nenable= 0\n[Off_cfgBindings]\noff-run= <Key-F7>\n"},
		nil,
	)
	assert.False(t, env.reg.Keys().Resolve("").Has("off-run"))
}

func TestKeySetResolver_ReturnsCopies(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	keys := env.reg.Keys()

	ks := keys.Resolve("")
	ks.Set("copy", nil)

	copyKeys, _ := keys.Resolve("").Get("copy")
	assert.Equal(t, []string{"<Control-c>", "<Control-C>"}, copyKeys)
}

func TestKeySetResolver_BindingAndCore(t *testing.T) {
	env := newTestEnv(t, map[string]string{"keys": "[Test]\nfind= <Control-Key-u> <Control-Key-s>\n"}, nil)
	keys := env.reg.Keys()

	assert.Equal(t, []string{"<Control-Key-u>", "<Control-Key-s>"}, keys.Binding("Test", "<<find>>"))
	assert.Nil(t, keys.Binding("Test", "replace"))

	assert.True(t, keys.IsCoreBinding("copy"))
	assert.True(t, keys.IsCoreBinding("<<toggle-tabs>>"))
	assert.False(t, keys.IsCoreBinding("expand-word"))
	assert.Len(t, CoreEvents(), 45)
}
