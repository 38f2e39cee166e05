package config

import (
	"errors"
	"fmt"

	"github.com/dshills/edconf/internal/config/layer"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownDomain indicates a name that is not one of the four domains.
	ErrUnknownDomain = errors.New("unknown configuration domain")

	// ErrUnknownConfigSet indicates a name that is neither "user" nor "default".
	ErrUnknownConfigSet = errors.New("unknown config set")

	// ErrUnknownSelector indicates a colour selector other than "fg" or "bg".
	ErrUnknownSelector = errors.New("unknown colour selector")

	// ErrUnknownValueKind indicates a kind name other than "string", "int"
	// or "bool".
	ErrUnknownValueKind = errors.New("unknown value kind")

	// ErrUnknownElement indicates a theme element that is not part of the
	// fixed element set.
	ErrUnknownElement = errors.New("unknown theme element")

	// ErrInvalidValue indicates a stored value that does not parse as the
	// requested kind.
	ErrInvalidValue = errors.New("invalid value")

	// ErrReadOnly indicates modification was attempted on a default source.
	ErrReadOnly = layer.ErrReadOnly
)

// SaveError reports a failure to persist one domain's user overrides.
type SaveError struct {
	// Domain is the domain that failed to save.
	Domain Domain
	// Path is the user file that could not be written or removed.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s configuration to %s: %v", e.Domain, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// LoadError reports a failure to load one source of a domain.
type LoadError struct {
	Domain Domain
	Set    ConfigSet
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s %s configuration: %v", e.Set, e.Domain, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValueError is returned when a stored string cannot be parsed as the
// requested kind.
type ValueError struct {
	Kind ValueKind
	Raw  string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Raw, e.Kind)
}

// Is implements error matching for ValueError.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
