package config

import "strings"

// Suffixes of the extension sections that hold bindings rather than
// extension settings.
const (
	BindingsSuffix    = "_bindings"
	CfgBindingsSuffix = "_cfgBindings"
)

// Extension describes one declared extension.
type Extension struct {
	// Name is the extension's section name.
	Name string
	// Enabled is the resolved "enable" option (true when unset).
	Enabled bool
	// Declared is the source that first declares the extension.
	Declared ConfigSet
	// Bindings are the fixed event bindings from <name>_bindings.
	Bindings *KeySet
	// CfgBindings are the configurable bindings from <name>_cfgBindings,
	// as stored and before collision handling.
	CfgBindings *KeySet
}

// ExtensionCatalog enumerates extensions declared in the extensions domain.
type ExtensionCatalog struct {
	reg *Registry
}

// NewExtensionCatalog creates a catalog over reg.
func NewExtensionCatalog(reg *Registry) *ExtensionCatalog {
	return &ExtensionCatalog{reg: reg}
}

// IsBindingSection reports whether section holds an extension's bindings.
func IsBindingSection(section string) bool {
	return strings.HasSuffix(section, BindingsSuffix) || strings.HasSuffix(section, CfgBindingsSuffix)
}

// List returns extension names: those the defaults declare in file order,
// then any the user adds. With activeOnly, extensions whose "enable" option
// resolves false are left out.
func (c *ExtensionCatalog) List(activeOnly bool) []string {
	var names []string
	seen := make(map[string]bool)
	for _, set := range []ConfigSet{SetDefault, SetUser} {
		for _, section := range c.reg.GetSectionList(set, DomainExtensions) {
			if IsBindingSection(section) || seen[section] {
				continue
			}
			seen[section] = true
			names = append(names, section)
		}
	}
	if !activeOnly {
		return names
	}

	active := names[:0:0]
	for _, name := range names {
		if c.enabled(name) {
			active = append(active, name)
		}
	}
	return active
}

func (c *ExtensionCatalog) enabled(name string) bool {
	return c.reg.GetBool(DomainExtensions, name, "enable", true)
}

// Describe returns the descriptor for name, or false if no source declares
// it.
func (c *ExtensionCatalog) Describe(name string) (Extension, bool) {
	store := c.reg.Store(DomainExtensions)
	var declared ConfigSet
	switch {
	case store.Default().HasSection(name):
		declared = SetDefault
	case store.User().HasSection(name):
		declared = SetUser
	default:
		return Extension{}, false
	}
	return Extension{
		Name:        name,
		Enabled:     c.enabled(name),
		Declared:    declared,
		Bindings:    c.sectionKeys(name + BindingsSuffix),
		CfgBindings: c.RawKeys(name),
	}, true
}

// RawKeys returns the configurable bindings of extension name as stored.
// Event names come from the defaults' <name>_cfgBindings section; values
// may be overridden by the user.
func (c *ExtensionCatalog) RawKeys(name string) *KeySet {
	return c.sectionKeys(name + CfgBindingsSuffix)
}

func (c *ExtensionCatalog) sectionKeys(section string) *KeySet {
	ks := NewKeySet()
	store := c.reg.Store(DomainExtensions)
	if !store.Default().HasSection(section) {
		return ks
	}
	for _, option := range store.Default().Options(section) {
		value := c.reg.GetString(DomainExtensions, section, option, "")
		ks.Set(Event(option), SplitChords(value))
	}
	return ks
}

// Keys returns the configurable bindings of extension name as they appear
// in the current key set, so bindings lost to a collision are empty.
func (c *ExtensionCatalog) Keys(name string) *KeySet {
	return c.keysIn(name, c.reg.Keys().Current())
}

func (c *ExtensionCatalog) keysIn(name string, current *KeySet) *KeySet {
	out := NewKeySet()
	for _, event := range c.RawKeys(name).Events() {
		chords, _ := current.Get(event)
		out.Set(event, chords)
	}
	return out
}

// Bindings returns Keys(name) plus the extension's fixed bindings.
func (c *ExtensionCatalog) Bindings(name string) *KeySet {
	out := c.Keys(name)
	fixed := c.sectionKeys(name + BindingsSuffix)
	for _, event := range fixed.Events() {
		chords, _ := fixed.Get(event)
		out.Set(event, chords)
	}
	return out
}

// ExtensionForEvent returns the extension whose configurable bindings
// declare event, given with or without "<<" ">>". When several do, the
// last one listed wins.
func (c *ExtensionCatalog) ExtensionForEvent(event string) (string, bool) {
	event = Event(event)
	var found string
	for _, name := range c.List(false) {
		if c.RawKeys(name).Has(event) {
			found = name
		}
	}
	return found, found != ""
}
