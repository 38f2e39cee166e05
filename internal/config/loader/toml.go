package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLCodec stores a document as one TOML table per section.
//
// Tables cannot preserve insertion order through a map, so sections and
// options are read back sorted by name. Arrays of scalars are joined with
// spaces, which is how chord lists are stored in the INI form.
type TOMLCodec struct{}

// Name returns "toml".
func (TOMLCodec) Name() string { return "toml" }

// Decode parses TOML data into a document.
func (TOMLCodec) Decode(data []byte) (*Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		pe := &ParseError{Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, _ = de.Position()
		}
		return nil, pe
	}

	doc := NewDocument()
	for _, name := range sortedKeys(raw) {
		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, &ParseError{Message: fmt.Sprintf("top-level key %q is not a table", name)}
		}
		s := doc.AddSection(name)
		for _, opt := range sortedKeys(table) {
			value, err := scalarString(table[opt])
			if err != nil {
				return nil, &ParseError{Message: fmt.Sprintf("%s.%s: %v", name, opt, err)}
			}
			s.Set(opt, value)
		}
	}
	return doc, nil
}

// Encode writes every section as a table of string values.
func (TOMLCodec) Encode(doc *Document) ([]byte, error) {
	return toml.Marshal(doc.Map())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// scalarString renders a decoded scalar (or array of scalars) as the string
// form the INI files would hold.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case int, int64, uint64, float64:
		return fmt.Sprint(val), nil
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, err := scalarString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
