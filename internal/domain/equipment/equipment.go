package equipment

// Slot identifies where a weapon is held
type Slot string

const (
	SlotMainhand Slot = "mainhand"
	SlotOffhand  Slot = "offhand"
	SlotNatural  Slot = "natural"
)

// Loadout is the set of weapons an actor currently wields
type Loadout struct {
	Mainhand *Weapon `json:"mainhand,omitempty" yaml:"mainhand,omitempty"`
	Offhand  *Weapon `json:"offhand,omitempty" yaml:"offhand,omitempty"`
	Natural  *Weapon `json:"natural,omitempty" yaml:"natural,omitempty"`

	// Ammunition counts by ammunition key (arrows, bolts, ...)
	Ammunition map[string]int `json:"ammunition,omitempty" yaml:"ammunition,omitempty"`
}

// Get returns the weapon in a slot, if any
func (l *Loadout) Get(slot Slot) *Weapon {
	if l == nil {
		return nil
	}
	switch slot {
	case SlotMainhand:
		return l.Mainhand
	case SlotOffhand:
		return l.Offhand
	case SlotNatural:
		return l.Natural
	}
	return nil
}

// Set puts w in a slot, returning the weapon it replaced
func (l *Loadout) Set(slot Slot, w *Weapon) *Weapon {
	var previous *Weapon
	switch slot {
	case SlotMainhand:
		previous, l.Mainhand = l.Mainhand, w
	case SlotOffhand:
		previous, l.Offhand = l.Offhand, w
	case SlotNatural:
		previous, l.Natural = l.Natural, w
	}
	return previous
}

// Primary returns the first usable weapon, preferring the main hand
func (l *Loadout) Primary() *Weapon {
	for _, slot := range []Slot{SlotMainhand, SlotOffhand, SlotNatural} {
		if w := l.Get(slot); w.Usable() {
			return w
		}
	}
	return nil
}

// Clone deep-copies the loadout
func (l *Loadout) Clone() *Loadout {
	if l == nil {
		return nil
	}
	clone := &Loadout{
		Mainhand: l.Mainhand.Clone(),
		Offhand:  l.Offhand.Clone(),
		Natural:  l.Natural.Clone(),
	}
	if l.Ammunition != nil {
		clone.Ammunition = make(map[string]int, len(l.Ammunition))
		for k, v := range l.Ammunition {
			clone.Ammunition[k] = v
		}
	}
	return clone
}
