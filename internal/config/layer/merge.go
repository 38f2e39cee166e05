package layer

import "github.com/dshills/edconf/internal/config/loader"

// Merge flattens the stack into a single document holding the effective
// value of every option. Layers are applied lowest priority first, so a
// value from a higher layer replaces the same option from a lower one while
// section and option order follow first appearance.
func (s *Stack) Merge() *loader.Document {
	out := loader.NewDocument()
	for _, l := range s.layers {
		MergeInto(out, l.doc)
	}
	return out
}

// MergeInto copies every option of src into dst, overwriting existing values.
func MergeInto(dst, src *loader.Document) {
	for _, sec := range src.Sections() {
		ds := dst.AddSection(sec.Name())
		for _, opt := range sec.Options() {
			v, _ := sec.Get(opt)
			ds.Set(opt, v)
		}
	}
}

// Diff compares two documents and returns "section/option" keys that were
// added, modified, or removed going from old to new.
func Diff(old, new *loader.Document) (added, modified, removed []string) {
	for _, sec := range new.Sections() {
		for _, opt := range sec.Options() {
			nv, _ := sec.Get(opt)
			key := sec.Name() + "/" + opt
			if ov, ok := old.Get(sec.Name(), opt); !ok {
				added = append(added, key)
			} else if ov != nv {
				modified = append(modified, key)
			}
		}
	}
	for _, sec := range old.Sections() {
		for _, opt := range sec.Options() {
			if !new.Has(sec.Name(), opt) {
				removed = append(removed, sec.Name()+"/"+opt)
			}
		}
	}
	return added, modified, removed
}
