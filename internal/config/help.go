package config

import "strings"

// HelpSection is the main-domain section listing extra help sources.
const HelpSection = "HelpFiles"

// HelpSource is an extra help document shown in the Help menu.
type HelpSource struct {
	MenuItem string `json:"menu_item" yaml:"menu_item" toml:"menu_item"`
	Path     string `json:"path" yaml:"path" toml:"path"`
	// Option is the option name the entry is stored under.
	Option string `json:"option" yaml:"option" toml:"option"`
}

// ParseHelpSource splits a stored "menu item;path" value. Entries without a
// separator or with an empty half are rejected.
func ParseHelpSource(option, value string) (HelpSource, bool) {
	item, path, ok := strings.Cut(value, ";")
	if !ok {
		return HelpSource{}, false
	}
	hs := HelpSource{
		MenuItem: strings.TrimSpace(item),
		Path:     strings.TrimSpace(path),
		Option:   option,
	}
	if hs.MenuItem == "" || hs.Path == "" {
		return HelpSource{}, false
	}
	return hs, true
}

// HelpSources returns the well-formed help entries of one source, in file
// order.
func (r *Registry) HelpSources(set ConfigSet) []HelpSource {
	src := r.Store(DomainMain).Layer(set)
	sources := []HelpSource{}
	for _, option := range src.Options(HelpSection) {
		value, _ := src.Get(HelpSection, option)
		hs, ok := ParseHelpSource(option, value)
		if !ok {
			r.logger.Debug("skipping malformed help source", "source", set, "option", option, "value", value)
			continue
		}
		sources = append(sources, hs)
	}
	return sources
}

// AllHelpSources returns default help entries followed by user entries.
func (r *Registry) AllHelpSources() []HelpSource {
	return append(r.HelpSources(SetDefault), r.HelpSources(SetUser)...)
}
