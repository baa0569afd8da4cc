package action

import (
	"context"
	"errors"

	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
)

// TargetSummary is the stored form of a target descriptor
type TargetSummary struct {
	ActorID string `json:"actor_id"`
	Token   string `json:"token,omitempty"`
	UUID    string `json:"uuid,omitempty"`
	Name    string `json:"name,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Summary is the serializable record of one use. Restoring it rebuilds an
// action whose confirm and reverse behave as the original's would.
type Summary struct {
	UseID      string          `json:"use_id"`
	ActionID   string          `json:"action_id"`
	ActionName string          `json:"action_name"`
	ActorID    string          `json:"actor_id"`
	Token      string          `json:"token,omitempty"`
	Tags       []string        `json:"tags"`
	State      State           `json:"state"`
	Cost       Cost            `json:"cost"`
	Usage      *Usage          `json:"usage"`
	Targets    []TargetSummary `json:"targets"`
	Outcomes   []*Outcome      `json:"outcomes"`
}

// Summarize captures the use for persistence
func (a *Action) Summarize() *Summary {
	s := &Summary{
		UseID:      a.UseID,
		ActionID:   a.ID,
		ActionName: a.Name,
		Token:      a.Token,
		Tags:       a.Tags.Names(),
		State:      a.state,
		Cost:       a.Cost,
		Usage:      a.Usage.Clone(),
		Targets:    make([]TargetSummary, 0, len(a.Targets)),
		Outcomes:   []*Outcome{},
	}
	if a.Actor != nil {
		s.ActorID = a.Actor.ID()
	}

	for _, t := range a.Targets {
		ts := TargetSummary{Token: t.Token, UUID: t.UUID, Name: t.Name}
		if t.Actor != nil {
			ts.ActorID = t.Actor.ID()
		}
		if t.Error != nil {
			ts.Error = t.Error.Error()
		}
		s.Targets = append(s.Targets, ts)
	}

	if a.Outcomes != nil {
		for _, o := range a.Outcomes.Outcomes() {
			s.Outcomes = append(s.Outcomes, o.Clone())
		}
	}
	return s
}

// Restore rebuilds a stored use on top of the actor's cached template. The
// restored action gets its own copy of the stored usage, except for the
// per-turn Flags, which stay shared with the live template.
func (e *Engine) Restore(ctx context.Context, s *Summary, resolver ActorResolver) (*Action, error) {
	if s == nil {
		return nil, dnderr.InvalidArgument("summary is required")
	}
	if resolver == nil {
		return nil, dnderr.InvalidArgument("actor resolver is required")
	}

	resolved := make(map[string]Actor)
	resolve := func(id string) (Actor, error) {
		if actor, ok := resolved[id]; ok {
			return actor, nil
		}
		actor, err := resolver.ResolveActor(ctx, id)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to resolve actor %s", id)
		}
		resolved[id] = actor
		return actor, nil
	}

	actor, err := resolve(s.ActorID)
	if err != nil {
		return nil, err
	}
	tmpl, ok := e.Template(s.ActorID, s.ActionID)
	if !ok {
		return nil, dnderr.FailedPreconditionf("action %s is not initialized for %s", s.ActionID, s.ActorID)
	}

	a := tmpl.Clone()
	a.Actor = actor
	a.UseID = s.UseID
	a.Token = s.Token
	a.Cost = s.Cost
	a.Tags = restoreTagSet(e.registry, s.Tags)
	a.state = s.State
	a.Usage = s.Usage.Clone()
	if a.Usage == nil {
		a.Usage = NewUsage()
	}
	if tmpl.Usage != nil {
		a.Usage.Flags = tmpl.Usage.Flags
	}

	a.Targets = make([]*Target, 0, len(s.Targets))
	for i, ts := range s.Targets {
		t := &Target{Token: ts.Token, UUID: ts.UUID, Name: ts.Name, Index: i}
		if ts.Error != "" {
			t.Error = errors.New(ts.Error)
		}
		if ts.ActorID != "" {
			if t.Actor, err = resolve(ts.ActorID); err != nil {
				return nil, err
			}
		}
		a.Targets = append(a.Targets, t)
	}

	a.Outcomes = NewOutcomeMap()
	for _, stored := range s.Outcomes {
		o := stored.Clone()
		if o.Target, err = resolve(o.TargetID); err != nil {
			return nil, err
		}
		if o.Resources == nil {
			o.Resources = make(map[string]int)
		}
		if o.ActorUpdates == nil {
			o.ActorUpdates = make(map[string]any)
		}
		if o.Statuses == nil {
			o.Statuses = make(map[string]bool)
		}
		a.Outcomes.Set(o)
	}

	return a, nil
}

// restoreTagSet rebuilds a set in the stored iteration order without
// re-running propagation.
func restoreTagSet(registry *TagRegistry, names []string) *TagSet {
	s := &TagSet{registry: registry}
	for _, name := range names {
		tag, ok := registry.Get(name)
		if !ok || s.Has(name) {
			continue
		}
		s.entries = append(s.entries, tagEntry{tag: tag, order: s.seq})
		s.seq++
	}
	s.sort()
	return s
}
