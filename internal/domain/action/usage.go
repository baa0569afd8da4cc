package action

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

// Resource pools known to the engine
const (
	ResourceHealth  = "health"
	ResourceMorale  = "morale"
	ResourceAction  = "action"
	ResourceFocus   = "focus"
	ResourceHeroism = "heroism"
)

// Defense kinds a check can target
const (
	DefensePhysical = "physical"
	DefenseMagical  = "magical"
)

// Bonuses are additive modifiers rebuilt on every prepare pass
type Bonuses struct {
	Ability     int     `json:"ability"`
	Skill       int     `json:"skill"`
	Enchantment int     `json:"enchantment"`
	Base        int     `json:"base"`
	DamageBonus int     `json:"damage_bonus"`
	Multiplier  float64 `json:"multiplier"`
}

// DefaultBonuses returns the values prepare starts from
func DefaultBonuses() Bonuses {
	return Bonuses{Multiplier: 1}
}

// UseContext describes why a use is happening, for display
type UseContext struct {
	Label string            `json:"label,omitempty"`
	Icon  string            `json:"icon,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// Strike is a weapon attack queued for the strike tag to resolve
type Strike struct {
	Slot   equipment.Slot    `json:"slot"`
	Weapon *equipment.Weapon `json:"weapon"`
}

// Usage is the scratch state shared by every clone of one action for one
// actor. Tag hooks communicate with each other and the outcome builder
// through it.
type Usage struct {
	Bonuses Bonuses        `json:"bonuses"`
	Boons   map[string]int `json:"boons"`
	Banes   map[string]int `json:"banes"`

	// ActorStatus and ActorUpdates are deferred to confirm via the self-outcome
	ActorStatus  map[string]bool `json:"actor_status"`
	ActorUpdates map[string]any  `json:"actor_updates"`

	// ActorFlags are applied to the actor as soon as outcomes are built
	ActorFlags map[string]any `json:"actor_flags"`

	Context UseContext `json:"context"`
	HasDice bool       `json:"has_dice"`

	DefenseType string `json:"defense_type"`
	DamageType  string `json:"damage_type"`
	Resource    string `json:"resource"`
	Restoration bool   `json:"restoration"`
	DC          int    `json:"dc"`

	Strikes []Strike `json:"strikes"`
	Summons []Summon `json:"summons"`

	// Flags persist across uses until ResetTurn
	Flags map[string]int `json:"flags"`
}

// NewUsage returns usage with every map allocated
func NewUsage() *Usage {
	u := &Usage{
		Flags: make(map[string]int),
	}
	u.ResetPrepare()
	u.ResetUse()
	return u
}

// ResetPrepare restores everything a prepare pass recomputes
func (u *Usage) ResetPrepare() {
	u.Bonuses = DefaultBonuses()
	u.Boons = make(map[string]int)
	u.Banes = make(map[string]int)
	u.HasDice = false
	u.DefenseType = DefensePhysical
	u.DamageType = ""
	u.Resource = ResourceHealth
	u.Restoration = false
	u.Context = UseContext{}
	u.DC = 0
	u.Strikes = nil
}

// ResetUse clears the per-use queues
func (u *Usage) ResetUse() {
	u.ActorStatus = make(map[string]bool)
	u.ActorUpdates = make(map[string]any)
	u.ActorFlags = make(map[string]any)
	u.Summons = nil
}

// ResetTurn clears cross-use bookkeeping
func (u *Usage) ResetTurn() {
	u.Flags = make(map[string]int)
}

// AddBoon records a named boon
func (u *Usage) AddBoon(name string, n int) {
	u.Boons[name] += n
}

// AddBane records a named bane
func (u *Usage) AddBane(name string, n int) {
	u.Banes[name] += n
}

// BoonTotal sums every boon
func (u *Usage) BoonTotal() int {
	total := 0
	for _, n := range u.Boons {
		total += n
	}
	return total
}

// BaneTotal sums every bane
func (u *Usage) BaneTotal() int {
	total := 0
	for _, n := range u.Banes {
		total += n
	}
	return total
}

// QueueStrike adds a weapon to the strike list unless it is already queued
func (u *Usage) QueueStrike(slot equipment.Slot, w *equipment.Weapon) {
	if w == nil || slices.ContainsFunc(u.Strikes, func(s Strike) bool { return s.Slot == slot }) {
		return
	}
	u.Strikes = append(u.Strikes, Strike{Slot: slot, Weapon: w})
}

// Clone deep-copies the usage. Engine clones of an action share usage by
// pointer; this is for snapshots.
func (u *Usage) Clone() *Usage {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Boons = maps.Clone(u.Boons)
	clone.Banes = maps.Clone(u.Banes)
	clone.ActorStatus = maps.Clone(u.ActorStatus)
	clone.ActorUpdates = maps.Clone(u.ActorUpdates)
	clone.ActorFlags = maps.Clone(u.ActorFlags)
	clone.Flags = maps.Clone(u.Flags)
	clone.Context.Tags = maps.Clone(u.Context.Tags)
	clone.Strikes = make([]Strike, len(u.Strikes))
	for i, s := range u.Strikes {
		clone.Strikes[i] = Strike{Slot: s.Slot, Weapon: s.Weapon.Clone()}
	}
	clone.Summons = slices.Clone(u.Summons)
	return &clone
}
