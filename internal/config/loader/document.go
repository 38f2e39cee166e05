package loader

import "strings"

// Document is an ordered mapping of section name to option name to value.
//
// Section names are case-sensitive. Option names are folded to lower case,
// matching the INI convention the shipped default files were written for.
// The zero value is not usable; call NewDocument.
type Document struct {
	sections []*Section
	index    map[string]*Section
}

// Section is a named, ordered group of options.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]*Section)}
}

// OptionKey normalises an option name.
func OptionKey(option string) string {
	return strings.ToLower(strings.TrimSpace(option))
}

// Len returns the number of sections, including empty ones.
func (d *Document) Len() int {
	return len(d.sections)
}

// Section returns the named section, or nil.
func (d *Document) Section(name string) *Section {
	return d.index[name]
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.index[name]
	return ok
}

// AddSection returns the named section, creating it at the end if needed.
func (d *Document) AddSection(name string) *Section {
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &Section{name: name, values: make(map[string]string)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

// RemoveSection deletes the named section.
func (d *Document) RemoveSection(name string) bool {
	if _, ok := d.index[name]; !ok {
		return false
	}
	delete(d.index, name)
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			break
		}
	}
	return true
}

// SectionNames returns section names in insertion order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.name
	}
	return names
}

// Sections returns the sections in insertion order.
// The slice is a copy; the sections are shared.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Get returns the value of section/option.
func (d *Document) Get(section, option string) (string, bool) {
	s := d.index[section]
	if s == nil {
		return "", false
	}
	return s.Get(option)
}

// Has reports whether section/option is present.
func (d *Document) Has(section, option string) bool {
	_, ok := d.Get(section, option)
	return ok
}

// Set stores value at section/option, creating the section if needed.
// It reports whether the stored value changed.
func (d *Document) Set(section, option, value string) bool {
	return d.AddSection(section).Set(option, value)
}

// RemoveOption deletes section/option and reports whether it existed.
func (d *Document) RemoveOption(section, option string) bool {
	s := d.index[section]
	if s == nil {
		return false
	}
	return s.Remove(option)
}

// Prune removes sections without options and returns how many were removed.
func (d *Document) Prune() int {
	kept := d.sections[:0]
	removed := 0
	for _, s := range d.sections {
		if s.Len() == 0 {
			delete(d.index, s.name)
			removed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(d.sections); i++ {
		d.sections[i] = nil
	}
	d.sections = kept
	return removed
}

// IsEmpty prunes empty sections and reports whether none remain.
func (d *Document) IsEmpty() bool {
	d.Prune()
	return len(d.sections) == 0
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, s := range d.sections {
		cs := out.AddSection(s.name)
		for _, k := range s.keys {
			cs.Set(k, s.values[k])
		}
	}
	return out
}

// Map returns the document as nested maps.
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for _, s := range d.sections {
		m := make(map[string]string, len(s.keys))
		for _, k := range s.keys {
			m[k] = s.values[k]
		}
		out[s.name] = m
	}
	return out
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of options.
func (s *Section) Len() int {
	return len(s.keys)
}

// Options returns option names in insertion order.
func (s *Section) Options() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the value of option.
func (s *Section) Get(option string) (string, bool) {
	v, ok := s.values[OptionKey(option)]
	return v, ok
}

// Set stores value and reports whether it differed from the previous value.
func (s *Section) Set(option, value string) bool {
	key := OptionKey(option)
	if old, ok := s.values[key]; ok {
		if old == value {
			return false
		}
		s.values[key] = value
		return true
	}
	s.keys = append(s.keys, key)
	s.values[key] = value
	return true
}

// Remove deletes option and reports whether it existed.
func (s *Section) Remove(option string) bool {
	key := OptionKey(option)
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}
