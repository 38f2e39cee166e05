package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := ParseDomain("colours")
	assert.ErrorIs(t, err, ErrUnknownDomain)
	assert.Equal(t, "Domain(9)", Domain(9).String())
}

func TestDomainFiles(t *testing.T) {
	assert.Equal(t, "config-highlight.def", DomainHighlight.DefaultFile())
	assert.Equal(t, "config-keys.cfg", DomainKeys.UserFile(".cfg"))
	assert.Equal(t, "config-main.toml", DomainMain.UserFile(".toml"))
}

func TestParseConfigSet(t *testing.T) {
	set, err := ParseConfigSet("user")
	require.NoError(t, err)
	assert.Equal(t, SetUser, set)
	assert.Equal(t, "default", SetDefault.String())

	_, err = ParseConfigSet("system")
	assert.ErrorIs(t, err, ErrUnknownConfigSet)

	assert.Panics(t, func() { _ = ConfigSet(5).String() })
}

func TestParseValueKind(t *testing.T) {
	for _, k := range []ValueKind{KindString, KindInt, KindBool} {
		got, err := ParseValueKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, name := range []string{"", "float", "Int", "unknown"} {
		_, err := ParseValueKind(name)
		assert.ErrorIs(t, err, ErrUnknownValueKind, "ParseValueKind(%q)", name)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind    ValueKind
		raw     string
		want    Value
		wantErr bool
	}{
		{KindString, " spaced ", StringValue(" spaced "), false},
		{KindInt, "42", IntValue(42), false},
		{KindInt, " -3 ", IntValue(-3), false},
		{KindInt, "4.5", Value{}, true},
		{KindBool, "Yes", BoolValue(true), false},
		{KindBool, "on", BoolValue(true), false},
		{KindBool, "0", BoolValue(false), false},
		{KindBool, "off", BoolValue(false), false},
		{KindBool, "maybe", Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "12", IntValue(12).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "x", StringValue("x").String())
}
