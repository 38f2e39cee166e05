// Package defaults embeds the shipped default configuration files.
package defaults

import "embed"

// FS holds config-main.def, config-extensions.def, config-highlight.def and
// config-keys.def at its root.
//
//go:embed *.def
var FS embed.FS
