// Package tags is the crucible tag catalog. Each tag is a small bundle of
// lifecycle hooks that actions opt into by name.
package tags

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// Priorities by category. Requirements settle cost and weapons before
// modifiers adjust them and attacks read the result.
const (
	PriorityRequirement = 10.0
	PriorityContext     = 20.0
	PriorityScaling     = 30.0
	PriorityModifier    = 40.0
	PriorityDamage      = 45.0
	PriorityAttack      = 60.0
	PrioritySpecial     = 70.0
)

// Catalog returns a fresh copy of every crucible tag
func Catalog() []*action.Tag {
	var all []*action.Tag
	all = append(all, requirementTags()...)
	all = append(all, contextTags()...)
	all = append(all, modifierTags()...)
	all = append(all, damageTags()...)
	all = append(all, scalingTags()...)
	all = append(all, attackTags()...)
	all = append(all, specialTags()...)
	return all
}

// RegisterAll adds the catalog to a registry and validates propagation
func RegisterAll(reg *action.TagRegistry) error {
	for _, tag := range Catalog() {
		if err := reg.Register(tag); err != nil {
			return fmt.Errorf("failed to register tag %s: %w", tag.Name, err)
		}
	}
	return reg.Validate()
}

// NewRegistry builds a registry holding the full catalog
func NewRegistry() (*action.TagRegistry, error) {
	reg := action.NewTagRegistry()
	if err := RegisterAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
