package action

import (
	"fmt"
	"math"
	"slices"
	"sync"
)

// Category groups tags by the kind of behavior they add
type Category string

const (
	CategoryRequirement Category = "requirement"
	CategoryContext     Category = "context"
	CategoryModifier    Category = "modifier"
	CategoryDamage      Category = "damage"
	CategoryScaling     Category = "scaling"
	CategoryAttack      Category = "attack"
	CategorySpecial     Category = "special"
)

const PriorityDefault = 50.0

// PriorityFirst sorts a tag before every finite priority
var PriorityFirst = math.Inf(-1)

// PriorityLast sorts a tag after every finite priority
var PriorityLast = math.Inf(1)

// Tag is a named behavior fragment. Tags are defined once in a registry and
// shared by every action that lists them.
type Tag struct {
	Name     string
	Label    string
	Category Category

	// Priority orders hooks within a phase, lowest first. The zero value is
	// read as PriorityDefault, so a literal 0 cannot be requested; use
	// PriorityFirst or any positive value to run ahead of default tags.
	Priority float64

	// Propagate names tags added alongside this one
	Propagate []string

	Hooks Hooks
}

// EffectivePriority returns the priority used for ordering
func (t *Tag) EffectivePriority() float64 {
	if t.Priority == 0 {
		return PriorityDefault
	}
	return t.Priority
}

// TagRegistry is the catalog of known tags
type TagRegistry struct {
	mu   sync.RWMutex
	tags map[string]*Tag
}

// NewTagRegistry creates an empty registry
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{
		tags: make(map[string]*Tag),
	}
}

// Register adds a tag to the catalog
func (r *TagRegistry) Register(tag *Tag) error {
	if tag == nil || tag.Name == "" {
		return fmt.Errorf("tag must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tags[tag.Name]; exists {
		return fmt.Errorf("tag %q already registered", tag.Name)
	}
	r.tags[tag.Name] = tag
	return nil
}

// MustRegister registers tags and panics on a duplicate
func (r *TagRegistry) MustRegister(tags ...*Tag) {
	for _, tag := range tags {
		if err := r.Register(tag); err != nil {
			panic(err)
		}
	}
}

// Get looks up a tag by name
func (r *TagRegistry) Get(name string) (*Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[name]
	return tag, ok
}

// Names returns every registered tag name, sorted
func (r *TagRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered tags
func (r *TagRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tags)
}

// Validate checks that every propagate edge names a registered tag and that
// the propagation graph is acyclic.
func (r *TagRegistry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	const (
		unvisited = iota
		visiting
		done
	)
	marks := make(map[string]int, len(r.tags))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch marks[name] {
		case visiting:
			return fmt.Errorf("tag propagation cycle: %v", append(path, name))
		case done:
			return nil
		}
		marks[name] = visiting
		for _, next := range r.tags[name].Propagate {
			if _, ok := r.tags[next]; !ok {
				return fmt.Errorf("tag %q propagates unknown tag %q", name, next)
			}
			if err := visit(next, append(path, name)); err != nil {
				return err
			}
		}
		marks[name] = done
		return nil
	}

	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}
