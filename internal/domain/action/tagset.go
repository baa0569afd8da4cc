package action

import (
	"cmp"
	"iter"
	"log"
	"slices"
)

type tagEntry struct {
	tag   *Tag
	order int
}

// TagSet is the ordered set of tags active on one action. Iteration is by
// priority ascending, ties in insertion order.
type TagSet struct {
	registry *TagRegistry
	entries  []tagEntry
	seq      int
}

// NewTagSet creates a set bound to a registry and adds the given names
func NewTagSet(registry *TagRegistry, names ...string) *TagSet {
	s := &TagSet{registry: registry}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a tag and everything it propagates. Unknown names are logged
// and ignored. It reports whether the named tag was newly added.
func (s *TagSet) Add(name string) bool {
	added := s.add(name)
	if added {
		s.sort()
	}
	return added
}

func (s *TagSet) add(name string) bool {
	if s.Has(name) {
		return false
	}
	tag, ok := s.registry.Get(name)
	if !ok {
		log.Printf("[action] ignoring unknown tag %q", name)
		return false
	}

	s.entries = append(s.entries, tagEntry{tag: tag, order: s.seq})
	s.seq++

	for _, next := range tag.Propagate {
		s.add(next)
	}
	return true
}

// Delete removes a tag. Propagated tags stay.
func (s *TagSet) Delete(name string) bool {
	i := slices.IndexFunc(s.entries, func(e tagEntry) bool { return e.tag.Name == name })
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(slices.Clone(s.entries), i, i+1)
	s.sort()
	return true
}

// Clear removes every tag
func (s *TagSet) Clear() {
	s.entries = nil
}

// Has reports membership
func (s *TagSet) Has(name string) bool {
	return slices.ContainsFunc(s.entries, func(e tagEntry) bool { return e.tag.Name == name })
}

// Len returns the number of tags
func (s *TagSet) Len() int {
	return len(s.entries)
}

// Names returns tag names in iteration order
func (s *TagSet) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.tag.Name
	}
	return names
}

// Tags yields tag definitions in priority order. The sequence may be ranged
// over any number of times and always reflects current membership.
func (s *TagSet) Tags() iter.Seq[*Tag] {
	return func(yield func(*Tag) bool) {
		for _, e := range slices.Clone(s.entries) {
			if !yield(e.tag) {
				return
			}
		}
	}
}

// Clone copies the set. Tag definitions are shared.
func (s *TagSet) Clone() *TagSet {
	if s == nil {
		return nil
	}
	return &TagSet{
		registry: s.registry,
		entries:  slices.Clone(s.entries),
		seq:      s.seq,
	}
}

func (s *TagSet) sort() {
	slices.SortFunc(s.entries, func(a, b tagEntry) int {
		if c := cmp.Compare(a.tag.EffectivePriority(), b.tag.EffectivePriority()); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
}
