package config

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/edconf/internal/config/layer"
	"github.com/dshills/edconf/internal/config/loader"
)

// DomainStore is one configuration domain: a read-only default layer and a
// writable user layer. Reads consult the user layer first; writes always go
// to the user layer.
//
// DomainStore is not safe for concurrent use.
type DomainStore struct {
	domain   Domain
	stack    *layer.Stack
	defaults *layer.Layer
	user     *layer.Layer
	logger   *log.Logger
}

// NewDomainStore creates a store over the given layers.
func NewDomainStore(domain Domain, defaults, user *layer.Layer, logger *log.Logger) *DomainStore {
	if logger == nil {
		logger = log.Default()
	}
	return &DomainStore{
		domain:   domain,
		stack:    layer.NewStack(defaults, user),
		defaults: defaults,
		user:     user,
		logger:   logger,
	}
}

// Domain returns the store's domain.
func (s *DomainStore) Domain() Domain {
	return s.domain
}

// Default returns the default layer.
func (s *DomainStore) Default() *layer.Layer {
	return s.defaults
}

// User returns the user layer.
func (s *DomainStore) User() *layer.Layer {
	return s.user
}

// Layer returns the layer for set.
func (s *DomainStore) Layer(set ConfigSet) *layer.Layer {
	return s.stack.BySource(set.source())
}

// Load reads both layers. A missing file leaves its layer empty; a
// malformed one fails the whole domain.
func (s *DomainStore) Load() error {
	for _, set := range []ConfigSet{SetDefault, SetUser} {
		l := s.Layer(set)
		if err := l.Load(); err != nil {
			return &LoadError{Domain: s.domain, Set: set, Err: err}
		}
		s.logger.Debug("loaded configuration", "domain", s.domain, "source", set, "path", l.Path, "sections", len(l.Sections()))
	}
	return nil
}

// Raw returns the effective stored string for section/option.
func (s *DomainStore) Raw(section, option string) (string, bool) {
	v, _, ok := s.stack.Get(section, option)
	return v, ok
}

// Get returns the value at section/option parsed as kind, checking the user
// layer and then the default layer. If neither holds a value, or the stored
// value does not parse, def is returned and a configuration miss is logged.
func (s *DomainStore) Get(section, option string, kind ValueKind, def Value) Value {
	v, _, _ := s.Lookup(section, option, kind, def)
	return v
}

// Lookup is Get that also reports which source supplied the value. ok is
// false when def was returned, including when a stored value failed to
// parse.
func (s *DomainStore) Lookup(section, option string, kind ValueKind, def Value) (v Value, set ConfigSet, ok bool) {
	raw, from, found := s.stack.Get(section, option)
	if !found {
		s.logger.Warn("configuration miss, using default",
			"domain", s.domain, "section", section, "option", option, "default", def)
		return def, 0, false
	}
	v, err := ParseValue(kind, raw)
	if err != nil {
		s.logger.Warn("invalid configuration value, using default",
			"domain", s.domain, "source", from.Source, "section", section, "option", option,
			"value", raw, "kind", kind, "default", def)
		return def, 0, false
	}
	set = SetDefault
	if from == s.user {
		set = SetUser
	}
	return v, set, true
}

// Has reports whether either layer holds section/option.
func (s *DomainStore) Has(section, option string) bool {
	return s.stack.Has(section, option)
}

// HasSection reports whether either layer has the section.
func (s *DomainStore) HasSection(section string) bool {
	return s.defaults.HasSection(section) || s.user.HasSection(section)
}

// Options returns the option names of section across both layers, default
// order first, then options only the user defines.
func (s *DomainStore) Options(section string) []string {
	return s.stack.Options(section)
}

// Sections returns section names across both layers, default order first.
func (s *DomainStore) Sections() []string {
	return s.stack.Sections()
}

// Set stores value in the user layer, creating the section if needed.
// It reports whether the stored user value changed; setting the value that
// is already stored is a no-op.
func (s *DomainStore) Set(section, option, value string) (bool, error) {
	return s.user.Set(section, option, value)
}

// RemoveOption deletes section/option from the user layer.
func (s *DomainStore) RemoveOption(section, option string) (bool, error) {
	return s.user.RemoveOption(section, option)
}

// IsEmpty reports whether the user layer holds no options.
// Sections without options are pruned as a side effect.
func (s *DomainStore) IsEmpty() bool {
	return s.user.IsEmpty()
}

// Save writes the user layer, or deletes its file when the layer is empty.
func (s *DomainStore) Save() error {
	if err := s.user.Save(); err != nil {
		return &SaveError{Domain: s.domain, Path: s.user.Path, Err: err}
	}
	s.logger.Debug("saved user configuration", "domain", s.domain, "path", s.user.Path, "empty", s.user.IsEmpty())
	return nil
}

// Effective returns the merged view of both layers.
func (s *DomainStore) Effective() *loader.Document {
	return s.stack.Merge()
}

// Overrides lists "section/option" keys the user layer adds or changes
// relative to the defaults.
func (s *DomainStore) Overrides() (added, modified []string) {
	added, modified, _ = layer.Diff(s.defaults.Document(), s.Effective())
	return added, modified
}
