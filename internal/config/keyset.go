package config

import (
	"sort"
	"strings"
)

// Event returns the canonical "<<name>>" form of a virtual event. Names
// already in canonical form are returned unchanged.
func Event(name string) string {
	if strings.HasPrefix(name, "<<") && strings.HasSuffix(name, ">>") {
		return name
	}
	return "<<" + name + ">>"
}

// EventName strips the "<<" and ">>" around a virtual event.
func EventName(event string) string {
	if strings.HasPrefix(event, "<<") && strings.HasSuffix(event, ">>") && len(event) >= 4 {
		return event[2 : len(event)-2]
	}
	return event
}

// SplitChords splits a stored binding value into its chords.
func SplitChords(value string) []string {
	return strings.Fields(value)
}

type binding struct {
	event  string
	chords []string
}

// baselineKeys is the fallback for every core event.
var baselineKeys = []binding{
	{"<<copy>>", []string{"<Control-c>", "<Control-C>"}},
	{"<<cut>>", []string{"<Control-x>", "<Control-X>"}},
	{"<<paste>>", []string{"<Control-v>", "<Control-V>"}},
	{"<<beginning-of-line>>", []string{"<Control-a>", "<Home>"}},
	{"<<center-insert>>", []string{"<Control-l>"}},
	{"<<close-all-windows>>", []string{"<Control-q>"}},
	{"<<close-window>>", []string{"<Alt-F4>"}},
	{"<<do-nothing>>", []string{"<Control-x>"}},
	{"<<end-of-file>>", []string{"<Control-d>"}},
	{"<<python-docs>>", []string{"<F1>"}},
	{"<<python-context-help>>", []string{"<Shift-F1>"}},
	{"<<history-next>>", []string{"<Alt-n>"}},
	{"<<history-previous>>", []string{"<Alt-p>"}},
	{"<<interrupt-execution>>", []string{"<Control-c>"}},
	{"<<open-class-browser>>", []string{"<Alt-c>"}},
	{"<<open-module>>", []string{"<Alt-m>"}},
	{"<<open-new-window>>", []string{"<Control-n>"}},
	{"<<open-window-from-file>>", []string{"<Control-o>"}},
	{"<<plain-newline-and-indent>>", []string{"<Control-j>"}},
	{"<<print-window>>", []string{"<Control-p>"}},
	{"<<redo>>", []string{"<Control-y>"}},
	{"<<remove-selection>>", []string{"<Escape>"}},
	{"<<save-copy-of-window-as-file>>", []string{"<Alt-Shift-s>"}},
	{"<<save-window-as-file>>", []string{"<Alt-s>"}},
	{"<<save-window>>", []string{"<Control-s>"}},
	{"<<select-all>>", []string{"<Alt-a>"}},
	{"<<toggle-auto-coloring>>", []string{"<Control-slash>"}},
	{"<<undo>>", []string{"<Control-z>"}},
	{"<<find-again>>", []string{"<Control-g>", "<F3>"}},
	{"<<find-in-files>>", []string{"<Alt-F3>"}},
	{"<<find-selection>>", []string{"<Control-F3>"}},
	{"<<find>>", []string{"<Control-f>"}},
	{"<<replace>>", []string{"<Control-h>"}},
	{"<<goto-line>>", []string{"<Alt-g>"}},
	{"<<smart-backspace>>", []string{"<Key-BackSpace>"}},
	{"<<newline-and-indent>>", []string{"<Key-Return>", "<Key-KP_Enter>"}},
	{"<<smart-indent>>", []string{"<Key-Tab>"}},
	{"<<indent-region>>", []string{"<Control-Key-bracketright>"}},
	{"<<dedent-region>>", []string{"<Control-Key-bracketleft>"}},
	{"<<comment-region>>", []string{"<Alt-Key-3>"}},
	{"<<uncomment-region>>", []string{"<Alt-Key-4>"}},
	{"<<tabify-region>>", []string{"<Alt-Key-5>"}},
	{"<<untabify-region>>", []string{"<Alt-Key-6>"}},
	{"<<toggle-tabs>>", []string{"<Alt-Key-t>"}},
	{"<<change-indentwidth>>", []string{"<Alt-Key-u>"}},
}

// CoreEvents returns the core virtual events in canonical order.
func CoreEvents() []string {
	events := make([]string, len(baselineKeys))
	for i, b := range baselineKeys {
		events[i] = b.event
	}
	return events
}

// KeySet maps virtual events to chord lists, in insertion order. A blanked
// event maps to an empty list. A KeySet returned by a resolver is an
// independent copy.
type KeySet struct {
	order  []string
	chords map[string][]string
}

// NewKeySet creates an empty key set.
func NewKeySet() *KeySet {
	return &KeySet{chords: make(map[string][]string)}
}

// Get returns a copy of the chords bound to event. event may be given with
// or without the surrounding "<<" ">>".
func (k *KeySet) Get(event string) ([]string, bool) {
	c, ok := k.chords[Event(event)]
	if !ok {
		return nil, false
	}
	return append([]string{}, c...), true
}

// Has reports whether event is present.
func (k *KeySet) Has(event string) bool {
	_, ok := k.chords[Event(event)]
	return ok
}

// Events returns event names in insertion order.
func (k *KeySet) Events() []string {
	return append([]string(nil), k.order...)
}

// Len returns the number of events.
func (k *KeySet) Len() int {
	return len(k.order)
}

// Map returns a deep copy of the event to chords mapping.
func (k *KeySet) Map() map[string][]string {
	m := make(map[string][]string, len(k.chords))
	for event, c := range k.chords {
		m[event] = append([]string{}, c...)
	}
	return m
}

// Clone returns a deep copy.
func (k *KeySet) Clone() *KeySet {
	out := NewKeySet()
	for _, event := range k.order {
		out.Set(event, k.chords[event])
	}
	return out
}

// Set binds event to a copy of chords, keeping the event's position if it
// is already present.
func (k *KeySet) Set(event string, chords []string) {
	event = Event(event)
	if _, ok := k.chords[event]; !ok {
		k.order = append(k.order, event)
	}
	k.chords[event] = append([]string{}, chords...)
}

// Claimed reports whether some event is already bound to exactly chords.
// An empty chord list never counts as claimed.
func (k *KeySet) Claimed(chords []string) bool {
	if len(chords) == 0 {
		return false
	}
	for _, c := range k.chords {
		if equalChords(c, chords) {
			return true
		}
	}
	return false
}

func equalChords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// KeySetResolver builds complete key sets from the keys domain and the
// configurable bindings of active extensions.
type KeySetResolver struct {
	reg *Registry
}

// NewKeySetResolver creates a resolver over reg.
func NewKeySetResolver(reg *Registry) *KeySetResolver {
	return &KeySetResolver{reg: reg}
}

// CoreKeys returns the core bindings of the key set called name, using the
// baseline for any event the set does not bind. An empty name yields the
// baseline without diagnostics.
func (r *KeySetResolver) CoreKeys(name string) *KeySet {
	ks := NewKeySet()
	for _, b := range baselineKeys {
		ks.Set(b.event, b.chords)
	}
	if name == "" {
		return ks
	}

	logger := r.reg.Logger()
	for _, b := range baselineKeys {
		chords := r.Binding(name, b.event)
		if len(chords) == 0 {
			logger.Warn("key binding missing, using baseline",
				"keyset", name, "event", b.event, "default", strings.Join(b.chords, " "))
			continue
		}
		ks.Set(b.event, chords)
	}
	return ks
}

// Resolve returns the core bindings of the named key set plus the
// configurable bindings of every active extension. Extensions are applied
// in name order and their events in declared order. An extension binding
// whose chord list is already bound to some event is blanked rather than
// added, so the first claimant keeps the chords.
func (r *KeySetResolver) Resolve(name string) *KeySet {
	ks := r.CoreKeys(name)
	catalog := r.reg.Extensions()

	active := catalog.List(true)
	sort.Strings(active)
	for _, ext := range active {
		raw := catalog.RawKeys(ext)
		for _, event := range raw.Events() {
			chords, _ := raw.Get(event)
			if ks.Claimed(chords) {
				r.reg.Logger().Debug("extension binding collides, disabling",
					"extension", ext, "event", event, "chords", strings.Join(chords, " "))
				chords = nil
			}
			ks.Set(event, chords)
		}
	}
	return ks
}

// Current resolves the key set named by the main domain's Keys/name option.
func (r *KeySetResolver) Current() *KeySet {
	return r.Resolve(r.reg.CurrentKeys())
}

// Binding returns the chords stored for event in the key set called name,
// or nil when the set does not bind it.
func (r *KeySetResolver) Binding(name, event string) []string {
	raw, ok := r.reg.Store(DomainKeys).Raw(name, EventName(Event(event)))
	if !ok {
		return nil
	}
	return SplitChords(raw)
}

// IsCoreBinding reports whether event is one of the core events.
func (r *KeySetResolver) IsCoreBinding(event string) bool {
	event = Event(event)
	for _, b := range baselineKeys {
		if b.event == event {
			return true
		}
	}
	return false
}
