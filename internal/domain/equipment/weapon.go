package equipment

import "slices"

// Weapon categories
const (
	CategoryMelee  = "melee"
	CategoryRanged = "ranged"
)

// Weapon properties referenced by action tags
const (
	PropertyThrown     = "thrown"
	PropertyAmmunition = "ammunition"
	PropertyNatural    = "natural"
	PropertyFinesse    = "finesse"
)

type Weapon struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Damage      int      `json:"damage" yaml:"damage"`
	DamageType  string   `json:"damage_type" yaml:"damage_type"`
	Range       int      `json:"range" yaml:"range"`
	Enchantment int      `json:"enchantment" yaml:"enchantment"`
	Hands       int      `json:"hands" yaml:"hands"`
	Properties  []string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Ammunition  string   `json:"ammunition,omitempty" yaml:"ammunition,omitempty"`
	Dropped     bool     `json:"dropped" yaml:"dropped"`
	Broken      bool     `json:"broken" yaml:"broken"`
}

func (w *Weapon) IsRanged() bool {
	return w != nil && w.Category == CategoryRanged
}

func (w *Weapon) IsMelee() bool {
	return w != nil && w.Category == CategoryMelee
}

func (w *Weapon) IsTwoHanded() bool {
	return w != nil && w.Hands >= 2
}

// HasProperty checks if the weapon has a specific property
func (w *Weapon) HasProperty(prop string) bool {
	return w != nil && slices.Contains(w.Properties, prop)
}

// Usable reports whether the weapon can be attacked with right now
func (w *Weapon) Usable() bool {
	return w != nil && !w.Dropped && !w.Broken
}

// Clone returns a copy that shares nothing with the original
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	clone := *w
	clone.Properties = slices.Clone(w.Properties)
	return &clone
}
