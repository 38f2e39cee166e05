// Package layer provides configuration sources and their precedence.
//
// A Layer is one source of configuration values for a domain: either the
// read-only shipped defaults or the writable user overrides. A Stack orders
// layers by priority so that lookups consult the highest priority layer first.
package layer

import (
	"errors"
	"fmt"

	"github.com/dshills/edconf/internal/config/loader"
)

// ErrReadOnly indicates modification was attempted on a read-only layer.
var ErrReadOnly = errors.New("configuration layer is read-only")

// Layer represents a single configuration source.
type Layer struct {
	// Name identifies the layer (e.g., "keys.user").
	Name string

	// Priority determines lookup order (higher overrides lower).
	Priority int

	// Source indicates which kind of source this layer is.
	Source Source

	// Path is the file the layer is loaded from and saved to.
	Path string

	// ReadOnly prevents modifications to this layer.
	ReadOnly bool

	fs    loader.FileSystem
	codec loader.Codec
	doc   *loader.Document
}

// NewLayer creates an empty, in-memory configuration layer.
func NewLayer(name string, source Source, priority int) *Layer {
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: priority,
		doc:      loader.NewDocument(),
	}
}

// NewFileLayer creates a layer backed by path on fsys. The codec is chosen
// from the file extension. Default-source layers are read-only.
func NewFileLayer(name string, source Source, fsys loader.FileSystem, path string) (*Layer, error) {
	codec, err := loader.CodecFor(path)
	if err != nil {
		return nil, err
	}
	l := NewLayer(name, source, DefaultPriority(source))
	l.Path = path
	l.ReadOnly = source == SourceDefault
	l.fs = fsys
	l.codec = codec
	return l, nil
}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceDefault represents the shipped, read-only defaults.
	SourceDefault Source = iota
	// SourceUser represents the per-user overrides.
	SourceUser
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Load replaces the layer contents with the file at Path.
// A missing file leaves the layer empty.
func (l *Layer) Load() error {
	if l.fs == nil {
		return nil
	}
	doc, err := loader.Read(l.fs, l.codec, l.Path)
	if err != nil {
		return err
	}
	l.doc = doc
	return nil
}

// Save writes the layer to Path. An empty layer (after pruning sections
// without options) deletes the file instead, so an empty override leaves no
// trace on disk.
func (l *Layer) Save() error {
	if l.ReadOnly {
		return fmt.Errorf("saving %s: %w", l.Name, ErrReadOnly)
	}
	if l.fs == nil {
		return nil
	}
	if l.doc.IsEmpty() {
		return loader.Delete(l.fs, l.Path)
	}
	return loader.Write(l.fs, l.codec, l.Path, l.doc)
}

// Get returns the raw value stored at section/option.
func (l *Layer) Get(section, option string) (string, bool) {
	return l.doc.Get(section, option)
}

// Has reports whether section/option is present.
func (l *Layer) Has(section, option string) bool {
	return l.doc.Has(section, option)
}

// HasSection reports whether the section is present.
func (l *Layer) HasSection(section string) bool {
	return l.doc.HasSection(section)
}

// Options returns the option names of section in stored order,
// or an empty slice if the section is absent.
func (l *Layer) Options(section string) []string {
	s := l.doc.Section(section)
	if s == nil {
		return []string{}
	}
	return s.Options()
}

// Sections returns section names in stored order.
func (l *Layer) Sections() []string {
	return l.doc.SectionNames()
}

// Set stores value at section/option, creating the section if needed.
// It reports whether the stored value changed.
func (l *Layer) Set(section, option, value string) (bool, error) {
	if l.ReadOnly {
		return false, fmt.Errorf("setting %s/%s in %s: %w", section, option, l.Name, ErrReadOnly)
	}
	return l.doc.Set(section, option, value), nil
}

// RemoveOption deletes section/option and reports whether it existed.
func (l *Layer) RemoveOption(section, option string) (bool, error) {
	if l.ReadOnly {
		return false, fmt.Errorf("removing %s/%s from %s: %w", section, option, l.Name, ErrReadOnly)
	}
	return l.doc.RemoveOption(section, option), nil
}

// IsEmpty prunes sections without options and reports whether none remain.
func (l *Layer) IsEmpty() bool {
	return l.doc.IsEmpty()
}

// Document returns a copy of the layer contents.
func (l *Layer) Document() *loader.Document {
	return l.doc.Clone()
}
