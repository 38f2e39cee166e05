package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Highlight elements. Every element has a foreground and a background key
// except cursor, whose background is normal-background.
var highlightElements = []string{
	"normal", "keyword", "comment", "string", "definition",
	"hilite", "break", "hit", "error", "cursor",
	"stdout", "stderr", "console",
}

// themeKeys lists every stored theme key in canonical order.
var themeKeys = []string{
	"normal-foreground", "normal-background",
	"keyword-foreground", "keyword-background",
	"comment-foreground", "comment-background",
	"string-foreground", "string-background",
	"definition-foreground", "definition-background",
	"hilite-foreground", "hilite-background",
	"break-foreground", "break-background",
	"hit-foreground", "hit-background",
	"error-foreground", "error-background",
	"cursor-foreground",
	"stdout-foreground", "stdout-background",
	"stderr-foreground", "stderr-background",
	"console-foreground", "console-background",
}

// baselineTheme is used for any key a theme section does not supply.
var baselineTheme = map[string]string{
	"normal-foreground":     "#000000",
	"normal-background":     "#ffffff",
	"keyword-foreground":    "#000000",
	"keyword-background":    "#ffffff",
	"comment-foreground":    "#000000",
	"comment-background":    "#ffffff",
	"string-foreground":     "#000000",
	"string-background":     "#ffffff",
	"definition-foreground": "#000000",
	"definition-background": "#ffffff",
	"hilite-foreground":     "#000000",
	"hilite-background":     "gray",
	"break-foreground":      "#ffffff",
	"break-background":      "#000000",
	"hit-foreground":        "#ffffff",
	"hit-background":        "#000000",
	"error-foreground":      "#ffffff",
	"error-background":      "#000000",
	"cursor-foreground":     "#000000",
	"stdout-foreground":     "#000000",
	"stdout-background":     "#ffffff",
	"stderr-foreground":     "#000000",
	"stderr-background":     "#ffffff",
	"console-foreground":    "#000000",
	"console-background":    "#ffffff",
}

// ThemeKeys returns the stored theme keys in canonical order.
func ThemeKeys() []string {
	return append([]string(nil), themeKeys...)
}

// HighlightElements returns the highlight element names.
func HighlightElements() []string {
	return append([]string(nil), highlightElements...)
}

// Theme is a complete colour mapping for one highlight theme. It always
// holds every key in ThemeKeys. A Theme is an independent copy: changing
// configuration afterwards does not affect it.
type Theme struct {
	// Name is the theme section name that was resolved.
	Name string
	// Source is the source the theme section was read from.
	Source ConfigSet

	colours map[string]string
}

// Get returns the colour stored for key.
func (t Theme) Get(key string) (string, bool) {
	c, ok := t.colours[key]
	return c, ok
}

// Keys returns the theme keys in canonical order.
func (t Theme) Keys() []string {
	return ThemeKeys()
}

// Len returns the number of keys in the theme.
func (t Theme) Len() int {
	return len(t.colours)
}

// Map returns a copy of the key to colour mapping.
func (t Theme) Map() map[string]string {
	m := make(map[string]string, len(t.colours))
	for k, v := range t.colours {
		m[k] = v
	}
	return m
}

// Highlight returns the colours of one element.
func (t Theme) Highlight(element string) (Highlight, error) {
	if !isHighlightElement(element) {
		return Highlight{}, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}
	h := Highlight{Foreground: t.colours[element+"-foreground"]}
	if element == "cursor" {
		h.Background = t.colours["normal-background"]
	} else {
		h.Background = t.colours[element+"-background"]
	}
	return h, nil
}

// Highlight is the foreground and background colour of one element.
type Highlight struct {
	Foreground string `json:"foreground" yaml:"foreground" toml:"foreground"`
	Background string `json:"background" yaml:"background" toml:"background"`
}

// Selector picks one colour of a Highlight.
type Selector uint8

const (
	// SelectorFG selects the foreground.
	SelectorFG Selector = iota
	// SelectorBG selects the background.
	SelectorBG
)

// String returns "fg" or "bg".
func (s Selector) String() string {
	switch s {
	case SelectorFG:
		return "fg"
	case SelectorBG:
		return "bg"
	default:
		return fmt.Sprintf("Selector(%d)", uint8(s))
	}
}

// ParseSelector converts "fg" or "bg" into a Selector.
func ParseSelector(s string) (Selector, error) {
	switch s {
	case "fg":
		return SelectorFG, nil
	case "bg":
		return SelectorBG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelector, s)
	}
}

// Pick returns the colour s selects.
func (h Highlight) Pick(s Selector) (string, error) {
	switch s {
	case SelectorFG:
		return h.Foreground, nil
	case SelectorBG:
		return h.Background, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSelector, s)
	}
}

var colourName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 ]*$`)

// ValidColour reports whether c is a hex colour (#rgb or #rrggbb) or a
// colour name.
func ValidColour(c string) bool {
	if strings.HasPrefix(c, "#") {
		_, err := colorful.Hex(c)
		return err == nil
	}
	return colourName.MatchString(c)
}

func isHighlightElement(element string) bool {
	for _, e := range highlightElements {
		if e == element {
			return true
		}
	}
	return false
}

// ThemeResolver builds complete themes from the highlight domain.
type ThemeResolver struct {
	reg *Registry
}

// NewThemeResolver creates a resolver over reg.
func NewThemeResolver(reg *Registry) *ThemeResolver {
	return &ThemeResolver{reg: reg}
}

// Resolve returns the theme called name. A theme shipped in the defaults
// wins over a custom theme of the same name. Keys the section does not
// supply, or supplies with a malformed colour, take the baseline value and
// log a warning. Resolve never fails: an unknown name yields the baseline.
func (r *ThemeResolver) Resolve(name string) Theme {
	store := r.reg.Store(DomainHighlight)
	set := SetUser
	if store.Default().HasSection(name) {
		set = SetDefault
	}
	src := store.Layer(set)
	logger := r.reg.Logger()

	theme := Theme{Name: name, Source: set, colours: make(map[string]string, len(themeKeys))}
	for _, key := range themeKeys {
		fallback := baselineTheme[key]
		c, ok := src.Get(name, key)
		switch {
		case !ok:
			logger.Warn("theme element missing, using baseline",
				"theme", name, "source", set, "element", key, "default", fallback)
			c = fallback
		case !ValidColour(c):
			logger.Warn("invalid theme colour, using baseline",
				"theme", name, "source", set, "element", key, "value", c, "default", fallback)
			c = fallback
		}
		theme.colours[key] = c
	}
	return theme
}

// Current resolves the theme named by the main domain's Theme/name option.
func (r *ThemeResolver) Current() Theme {
	return r.Resolve(r.reg.CurrentTheme())
}

// Highlight returns the colours of element in the named theme.
func (r *ThemeResolver) Highlight(theme, element string) (Highlight, error) {
	return r.Resolve(theme).Highlight(element)
}

// Colour returns one colour of element in the named theme.
func (r *ThemeResolver) Colour(theme, element string, sel Selector) (string, error) {
	h, err := r.Highlight(theme, element)
	if err != nil {
		return "", err
	}
	return h.Pick(sel)
}
