package layer

import "sort"

// Stack orders layers by priority and answers lookups across them.
//
// Stack is not safe for concurrent use; configuration is owned by a single
// caller that drives mutation sequentially.
type Stack struct {
	layers []*Layer // Sorted by priority (ascending)
}

// NewStack creates a stack from the given layers.
func NewStack(layers ...*Layer) *Stack {
	s := &Stack{}
	for _, l := range layers {
		s.Add(l)
	}
	return s
}

// Add adds a layer. Layers are kept sorted by priority; layers with equal
// priority keep insertion order.
func (s *Stack) Add(l *Layer) {
	s.layers = append(s.layers, l)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority < s.layers[j].Priority
	})
}

// BySource returns the first layer with the given source, or nil.
func (s *Stack) BySource(source Source) *Layer {
	for _, l := range s.layers {
		if l.Source == source {
			return l
		}
	}
	return nil
}

// Get returns the effective value for section/option.
// Returns the value, the layer it came from, and whether it was found.
func (s *Stack) Get(section, option string) (string, *Layer, bool) {
	// Search layers from highest to lowest priority
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if val, ok := l.Get(section, option); ok {
			return val, l, true
		}
	}
	return "", nil, false
}

// Has reports whether any layer holds section/option.
func (s *Stack) Has(section, option string) bool {
	_, _, ok := s.Get(section, option)
	return ok
}

// Sections returns the union of section names, lowest priority layer first.
func (s *Stack) Sections() []string {
	return s.union(func(l *Layer) []string { return l.Sections() })
}

// Options returns the union of option names in section, lowest priority
// layer first. Empty if no layer has the section.
func (s *Stack) Options(section string) []string {
	return s.union(func(l *Layer) []string { return l.Options(section) })
}

func (s *Stack) union(names func(*Layer) []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, l := range s.layers {
		for _, n := range names(l) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
