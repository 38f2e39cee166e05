package loader

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// INICodec reads and writes the bracketed-section "option = value" format
// used by the shipped .def files and the user .cfg files.
type INICodec struct{}

// iniOptions keeps values such as "#ffffff" and "menu;path" intact:
// '#' and ';' only start a comment at the beginning of a line.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: false,
}

// Name returns "ini".
func (INICodec) Name() string { return "ini" }

// Decode parses INI data. Options outside any section are kept in the
// DEFAULT section only when present.
func (INICodec) Decode(data []byte) (*Document, error) {
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}

	doc := NewDocument()
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		s := doc.AddSection(sec.Name())
		for _, key := range keys {
			s.Set(key.Name(), key.Value())
		}
	}
	return doc, nil
}

// Encode writes doc in section order with options in insertion order. The
// output is decoded again and must yield the same options, so a value the
// INI reader would unquote or reject is reported as ErrUnencodable instead
// of being written.
func (c INICodec) Encode(doc *Document) ([]byte, error) {
	f := ini.Empty(iniOptions)
	for _, s := range doc.Sections() {
		sec, err := f.NewSection(s.Name())
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Name(), err)
		}
		for _, opt := range s.Options() {
			if strings.HasPrefix(opt, "#") || strings.HasPrefix(opt, ";") {
				return nil, fmt.Errorf("option %q in section %q would be read as a comment: %w", opt, s.Name(), ErrUnencodable)
			}
			value, _ := s.Get(opt)
			if _, err := sec.NewKey(opt, value); err != nil {
				return nil, fmt.Errorf("option %q in section %q: %w", opt, s.Name(), err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	back, err := c.Decode(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("output does not parse (%v): %w", err, ErrUnencodable)
	}
	if err := sameOptions(doc, back); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sameOptions reports the first option of want that got lacks or holds
// with a different value, and any option only got has. Empty sections are
// not compared.
func sameOptions(want, got *Document) error {
	count := 0
	for _, s := range want.Sections() {
		for _, opt := range s.Options() {
			count++
			w, _ := s.Get(opt)
			g, ok := got.Get(s.Name(), opt)
			if !ok {
				return fmt.Errorf("option %q in section %q is lost: %w", opt, s.Name(), ErrUnencodable)
			}
			if g != w {
				return fmt.Errorf("option %q in section %q reads back as %q, not %q: %w", opt, s.Name(), g, w, ErrUnencodable)
			}
		}
	}
	for _, s := range got.Sections() {
		count -= s.Len()
	}
	if count != 0 {
		return fmt.Errorf("output holds options not in the document: %w", ErrUnencodable)
	}
	return nil
}
