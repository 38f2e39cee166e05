// Package config provides the layered configuration system for the editor.
//
// Configuration is split into four domains, each backed by two sources:
//
//	┌──────────────┬──────────────────────────────┬──────────────────────────────────┐
//	│ domain       │ default source (read-only)   │ user source (writable)           │
//	├──────────────┼──────────────────────────────┼──────────────────────────────────┤
//	│ main         │ config-main.def              │ ~/.idlerc/config-main.cfg        │
//	│ extensions   │ config-extensions.def        │ ~/.idlerc/config-extensions.cfg  │
//	│ highlight    │ config-highlight.def         │ ~/.idlerc/config-highlight.cfg   │
//	│ keys         │ config-keys.def              │ ~/.idlerc/config-keys.cfg        │
//	└──────────────┴──────────────────────────────┴──────────────────────────────────┘
//
// A user value always wins over a default value for the same section and
// option. When neither source has a value, the caller's default is returned
// and a warning is logged: configuration misses never stop the editor.
//
// # Basic Usage
//
//	reg, err := config.New(config.WithUserDir(dir))
//	if err != nil {
//	    return err
//	}
//	if err := reg.LoadAll(); err != nil {
//	    return err // malformed configuration file
//	}
//
//	width := reg.GetInt(config.DomainMain, "EditorWindow", "width", 80)
//	theme := reg.Themes().Current()
//	keys := reg.Keys().Current()
//
// # Resolvers
//
//   - ThemeResolver builds a complete highlight theme over a baseline.
//   - KeySetResolver builds the active keybindings, disabling extension
//     bindings that collide with bindings already claimed.
//   - ExtensionCatalog lists declared and enabled extensions and their
//     bindings.
//
// Resolvers return owned copies; mutating a returned Theme or KeySet never
// affects later results.
//
// # Error Handling
//
//   - configuration misses: logged, caller default returned
//   - malformed files: *loader.ParseError from LoadAll
//   - save failures: *SaveError per domain, joined
//   - unknown domain/config set/selector names: ErrUnknownDomain,
//     ErrUnknownConfigSet, ErrUnknownSelector from the Parse functions
package config
