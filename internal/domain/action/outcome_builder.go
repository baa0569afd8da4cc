package action

import (
	"context"
	"maps"
	"strconv"
)

// buildOutcomes resolves rolls per target, attaches effects, builds the
// self-outcome, runs postActivate and reduces damage into resources.
func (e *Engine) buildOutcomes(ctx context.Context, a *Action) {
	m := NewOutcomeMap()
	actor := a.Actor

	others := 0
	anySuccess := false
	for _, t := range a.Targets {
		o, ok := m.Get(t.Actor.ID())
		if !ok {
			o = NewOutcome(t.Actor)
			o.Token = t.Token
			o.Self = t.Actor.ID() == actor.ID()
			m.Set(o)
		}

		e.runPhase(ctx, a, PhaseRoll, func(h Hooks) error { return h.Roll(ctx, a, t, o) })

		rel := Relate(actor, t.Actor)
		if rel != RelationSelf {
			others++
			if o.Succeeded() {
				anySuccess = true
			}
		}
		if rel == RelationSelf || o.Succeeded() {
			attachEffects(a, o, rel)
		}
	}

	self, ok := m.Get(actor.ID())
	if !ok {
		self = NewOutcome(actor)
		self.Token = a.Token
		m.Set(self)
	}
	self.Self = true

	maps.Copy(self.Statuses, a.Usage.ActorStatus)
	maps.Copy(self.ActorUpdates, a.Usage.ActorUpdates)
	for _, pool := range []string{ResourceAction, ResourceFocus, ResourceHeroism} {
		self.AddResource(pool, -a.Cost.Pools()[pool])
	}
	self.Summons = append(self.Summons, a.Usage.Summons...)

	if others == 0 || anySuccess {
		for i, tmpl := range a.Effects {
			if tmpl.Scope == ScopeSelf {
				self.AddEffect(a.BuildEffect(strconv.Itoa(i), tmpl, actor.ID()))
			}
		}
	}

	a.Outcomes = m

	for _, o := range m.Outcomes() {
		e.runPhase(ctx, a, PhasePostActivate, func(h Hooks) error { return h.PostActivate(ctx, a, o) })
	}
	for _, o := range m.Outcomes() {
		o.finalize()
	}
}

// attachEffects grants every template whose scope matches the relationship
func attachEffects(a *Action, o *Outcome, rel Relationship) {
	for i, tmpl := range a.Effects {
		if tmpl.Scope.Matches(rel) {
			o.AddEffect(a.BuildEffect(strconv.Itoa(i), tmpl, o.TargetID))
		}
	}
}
