package config

import (
	"fmt"

	"github.com/dshills/edconf/internal/config/layer"
)

// Domain identifies one of the four independent configuration categories.
type Domain uint8

const (
	// DomainMain holds general editor settings.
	DomainMain Domain = iota
	// DomainExtensions declares extensions and their bindings.
	DomainExtensions
	// DomainHighlight holds highlight themes.
	DomainHighlight
	// DomainKeys holds key sets.
	DomainKeys
)

var domainNames = [...]string{
	DomainMain:       "main",
	DomainExtensions: "extensions",
	DomainHighlight:  "highlight",
	DomainKeys:       "keys",
}

// Domains returns every domain in canonical order.
func Domains() []Domain {
	return []Domain{DomainMain, DomainExtensions, DomainHighlight, DomainKeys}
}

// Valid reports whether d is one of the four domains.
func (d Domain) Valid() bool {
	return int(d) < len(domainNames)
}

// String returns the domain name.
func (d Domain) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
	return domainNames[d]
}

// DefaultFile returns the file name of the domain's shipped defaults.
func (d Domain) DefaultFile() string {
	return "config-" + d.String() + ".def"
}

// UserFile returns the file name of the domain's user overrides for the
// given extension (".cfg", ".toml", ".yaml").
func (d Domain) UserFile(ext string) string {
	return "config-" + d.String() + ext
}

// ParseDomain converts a name into a Domain.
func ParseDomain(s string) (Domain, error) {
	for d, name := range domainNames {
		if name == s {
			return Domain(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// mustValid panics on an out-of-range domain. Domains are a closed set, so
// an invalid one is a programming error.
func (d Domain) mustValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("config: %v: %s", ErrUnknownDomain, d))
	}
}

// ConfigSet selects one source within a domain.
type ConfigSet uint8

const (
	// SetDefault is the shipped, read-only defaults.
	SetDefault ConfigSet = iota
	// SetUser is the per-user overrides.
	SetUser
)

// String returns "default" or "user".
func (s ConfigSet) String() string {
	return s.source().String()
}

func (s ConfigSet) source() layer.Source {
	switch s {
	case SetDefault:
		return layer.SourceDefault
	case SetUser:
		return layer.SourceUser
	default:
		panic(fmt.Sprintf("config: %v: ConfigSet(%d)", ErrUnknownConfigSet, uint8(s)))
	}
}

// ParseConfigSet converts "user" or "default" into a ConfigSet.
func ParseConfigSet(s string) (ConfigSet, error) {
	switch s {
	case "default":
		return SetDefault, nil
	case "user":
		return SetUser, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConfigSet, s)
	}
}
