package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind selects how a stored string is interpreted.
type ValueKind uint8

const (
	// KindString returns the stored string unchanged.
	KindString ValueKind = iota
	// KindInt parses a decimal integer.
	KindInt
	// KindBool parses 1/yes/true/on and 0/no/false/off.
	KindBool
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseValueKind converts a kind name as printed by String into a ValueKind.
func ParseValueKind(s string) (ValueKind, error) {
	for _, k := range []ValueKind{KindString, KindInt, KindBool} {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownValueKind, s)
}

// Value is a typed configuration value.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int
	Bool bool
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue wraps i.
func IntValue(i int) Value { return Value{Kind: KindInt, Int: i} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// String formats the value the way it would be stored.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return v.Str
	}
}

// ParseValue interprets raw as kind.
func ParseValue(kind ValueKind, raw string) (Value, error) {
	switch kind {
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, &ValueError{Kind: kind, Raw: raw}
		}
		return IntValue(i), nil
	case KindBool:
		b, err := ParseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindString:
		return StringValue(raw), nil
	default:
		return Value{}, &ValueError{Kind: kind, Raw: raw}
	}
}

// ParseBool accepts the boolean spellings used in the INI files,
// case-insensitively.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	default:
		return false, &ValueError{Kind: KindBool, Raw: raw}
	}
}
