package action

import (
	"iter"
	"maps"
	"slices"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
)

// Summon is a creature queued for creation when a use is confirmed
type Summon struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// Outcome is the result of one use against one actor
type Outcome struct {
	Target   Actor  `json:"-"`
	TargetID string `json:"actor_id"`
	Token    string `json:"token,omitempty"`
	Self     bool   `json:"self"`

	Rolls        []*dice.Check           `json:"rolls"`
	Resources    map[string]int          `json:"resources"`
	ActorUpdates map[string]any          `json:"actor_updates,omitempty"`
	Effects      []*effects.StatusEffect `json:"effects,omitempty"`
	Statuses     map[string]bool         `json:"statuses,omitempty"`
	Summons      []Summon                `json:"summons,omitempty"`

	CriticalSuccess bool   `json:"critical_success"`
	CriticalFailure bool   `json:"critical_failure"`
	StatusText      string `json:"status_text,omitempty"`
}

// NewOutcome creates an empty outcome for a target
func NewOutcome(target Actor) *Outcome {
	return &Outcome{
		Target:       target,
		TargetID:     target.ID(),
		Resources:    make(map[string]int),
		ActorUpdates: make(map[string]any),
		Statuses:     make(map[string]bool),
	}
}

// Succeeded reports whether any roll succeeded. An outcome with no rolls
// counts as a success.
func (o *Outcome) Succeeded() bool {
	if len(o.Rolls) == 0 {
		return true
	}
	return slices.ContainsFunc(o.Rolls, func(c *dice.Check) bool { return c.IsSuccess() })
}

// AddEffect attaches an effect unless one with the same ID is present
func (o *Outcome) AddEffect(effect *effects.StatusEffect) bool {
	if slices.ContainsFunc(o.Effects, func(e *effects.StatusEffect) bool { return e.ID == effect.ID }) {
		return false
	}
	o.Effects = append(o.Effects, effect)
	return true
}

// AddResource adds a signed delta to a resource pool
func (o *Outcome) AddResource(resource string, delta int) {
	if delta == 0 {
		return
	}
	o.Resources[resource] += delta
}

// finalize reduces roll damage into resources and accumulates criticals
func (o *Outcome) finalize() {
	for _, roll := range o.Rolls {
		if roll.Damage != nil {
			resource := roll.Damage.Resource
			if resource == "" {
				resource = ResourceHealth
			}
			o.AddResource(resource, roll.Damage.Delta())
		}
		o.CriticalSuccess = o.CriticalSuccess || roll.IsCriticalSuccess()
		o.CriticalFailure = o.CriticalFailure || roll.IsCriticalFailure()
	}
}

// Clone deep-copies the outcome. The target actor is shared.
func (o *Outcome) Clone() *Outcome {
	clone := *o
	clone.Rolls = slices.Clone(o.Rolls)
	clone.Resources = maps.Clone(o.Resources)
	clone.ActorUpdates = maps.Clone(o.ActorUpdates)
	clone.Statuses = maps.Clone(o.Statuses)
	clone.Summons = slices.Clone(o.Summons)
	clone.Effects = make([]*effects.StatusEffect, len(o.Effects))
	for i, e := range o.Effects {
		clone.Effects[i] = e.Clone()
	}
	return &clone
}

// OutcomeMap holds one outcome per actor in construction order
type OutcomeMap struct {
	order []string
	byID  map[string]*Outcome
}

// NewOutcomeMap creates an empty map
func NewOutcomeMap() *OutcomeMap {
	return &OutcomeMap{byID: make(map[string]*Outcome)}
}

// Get returns the outcome for an actor
func (m *OutcomeMap) Get(actorID string) (*Outcome, bool) {
	o, ok := m.byID[actorID]
	return o, ok
}

// Set stores an outcome, keeping the position of an existing entry
func (m *OutcomeMap) Set(o *Outcome) {
	if _, exists := m.byID[o.TargetID]; !exists {
		m.order = append(m.order, o.TargetID)
	}
	m.byID[o.TargetID] = o
}

// Len returns the number of outcomes
func (m *OutcomeMap) Len() int {
	return len(m.order)
}

// All yields outcomes in construction order
func (m *OutcomeMap) All() iter.Seq2[string, *Outcome] {
	return func(yield func(string, *Outcome) bool) {
		for _, id := range slices.Clone(m.order) {
			if !yield(id, m.byID[id]) {
				return
			}
		}
	}
}

// Outcomes returns outcomes in construction order
func (m *OutcomeMap) Outcomes() []*Outcome {
	out := make([]*Outcome, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// Self returns the self-outcome, if built
func (m *OutcomeMap) Self() *Outcome {
	for _, id := range m.order {
		if o := m.byID[id]; o.Self {
			return o
		}
	}
	return nil
}

// Clone deep-copies every outcome
func (m *OutcomeMap) Clone() *OutcomeMap {
	if m == nil {
		return nil
	}
	clone := NewOutcomeMap()
	for _, o := range m.Outcomes() {
		clone.Set(o.Clone())
	}
	return clone
}
