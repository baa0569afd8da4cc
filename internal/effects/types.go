package effects

import "slices"

// EffectSource represents where an effect comes from
type EffectSource string

const (
	SourceAction    EffectSource = "action"
	SourceSpell     EffectSource = "spell"
	SourceItem      EffectSource = "item"
	SourceCondition EffectSource = "condition"
	SourceOther     EffectSource = "other"
)

// DurationType represents different duration types
type DurationType string

const (
	DurationPermanent DurationType = "permanent"
	DurationRounds    DurationType = "rounds"
	DurationTurns     DurationType = "turns"
	DurationInstant   DurationType = "instant"
)

// StackingRule defines how effects stack with each other
type StackingRule string

const (
	StackingReplace StackingRule = "replace" // New effect replaces old
	StackingStack   StackingRule = "stack"   // Effects coexist
	StackingIgnore  StackingRule = "ignore"  // Existing effect is kept
)

// Duration represents how long an effect lasts
type Duration struct {
	Type   DurationType `json:"type" yaml:"type"`
	Rounds int          `json:"rounds,omitempty" yaml:"rounds,omitempty"`
	Turns  int          `json:"turns,omitempty" yaml:"turns,omitempty"`
}

// Length returns the number of rounds or turns the duration spans
func (d Duration) Length() int {
	switch d.Type {
	case DurationRounds:
		return d.Rounds
	case DurationTurns:
		return d.Turns
	}
	return 0
}

// StatusEffect represents any effect that modifies an actor
type StatusEffect struct {
	ID           string       `json:"id"`
	Source       EffectSource `json:"source"`
	SourceID     string       `json:"source_id"` // ID of the action/item that created this
	OriginID     string       `json:"origin_id"` // ID of the actor that applied it
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Icon         string       `json:"icon,omitempty"`
	Duration     Duration     `json:"duration"`
	Statuses     []string     `json:"statuses,omitempty"`
	StackingRule StackingRule `json:"stacking_rule"`
	Active       bool         `json:"active"`
	Remaining    int          `json:"remaining"`
}

// IsExpired checks if the effect has run out
func (e *StatusEffect) IsExpired() bool {
	switch e.Duration.Type {
	case DurationInstant:
		return true
	case DurationRounds, DurationTurns:
		return e.Remaining <= 0
	}
	return false
}

// GrantsStatus reports whether the effect applies the named status
func (e *StatusEffect) GrantsStatus(status string) bool {
	return slices.Contains(e.Statuses, status)
}

// Clone returns an independent copy of the effect
func (e *StatusEffect) Clone() *StatusEffect {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Statuses = slices.Clone(e.Statuses)
	return &clone
}
