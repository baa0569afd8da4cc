package action

import (
	"context"
	"fmt"
	"log"

	engine "github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actors"
)

type service struct {
	engine      *engine.Engine
	actors      actors.Repository
	uses        actionuses.Repository
	definitions DefinitionSource
	rangeFunc   engine.RangeFunc
	strict      bool
	locks       *keyedMutex

	// settling serializes confirm and reverse per use ID
	settling *keyedMutex
}

// ServiceConfig holds configuration for the action service
type ServiceConfig struct {
	Engine      *engine.Engine
	Actors      actors.Repository
	Uses        actionuses.Repository
	Definitions DefinitionSource

	// RangeFunc measures distance to targets; nil skips range checks
	RangeFunc engine.RangeFunc

	// StrictTargets makes every use strict regardless of its input
	StrictTargets bool
}

// NewService creates a new action service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Engine == nil {
		panic("engine is required")
	}
	if cfg.Definitions == nil {
		panic("definition source is required")
	}

	svc := &service{
		engine:      cfg.Engine,
		actors:      cfg.Actors,
		uses:        cfg.Uses,
		definitions: cfg.Definitions,
		rangeFunc:   cfg.RangeFunc,
		strict:      cfg.StrictTargets,
		locks:       newKeyedMutex(),
		settling:    newKeyedMutex(),
	}

	if svc.actors == nil {
		svc.actors = actors.NewInMemoryRepository()
	}
	if svc.uses == nil {
		svc.uses = actionuses.NewInMemoryRepository(nil)
	}

	return svc
}

func (s *service) RegisterActor(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}

	defs := make([]engine.Definition, 0, len(a.Actions()))
	for _, id := range a.Actions() {
		def, err := s.definitions.Definition(id)
		if err != nil {
			return dnderr.Wrapf(err, "actor %s knows unknown action %s", a.ID(), id)
		}
		defs = append(defs, def)
	}

	unlock := s.locks.Lock(a.ID())
	defer unlock()

	if err := s.actors.Add(ctx, a); err != nil {
		return dnderr.Wrap(err, "failed to add actor")
	}
	for _, def := range defs {
		if _, err := s.engine.Initialize(ctx, a, def); err != nil {
			return dnderr.Wrapf(err, "failed to initialize %s for %s", def.ID, a.ID())
		}
	}

	log.Printf("[action] registered %s with %d action(s)", a.ID(), len(defs))
	return nil
}

func (s *service) Use(ctx context.Context, input *UseInput) (*UseResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.ActorID == "" || input.ActionID == "" {
		return nil, dnderr.InvalidArgument("actor ID and action ID are required")
	}

	unlock := s.locks.Lock(append([]string{input.ActorID}, input.TargetIDs...)...)
	defer unlock()

	performer, err := s.actors.Get(ctx, input.ActorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}

	opts := engine.UseOptions{
		RangeFunc: s.rangeFunc,
		Strict:    s.strict || input.Strict,
		Token:     input.Token,
	}
	var targets []*engine.Target
	if len(input.TargetIDs) > 0 {
		targets = s.resolveTargets(ctx, input.TargetIDs)
		opts.Acquirer = engine.TargetAcquirerFunc(func(context.Context, *engine.Action) ([]*engine.Target, error) {
			return targets, nil
		})
	}

	a, err := s.engine.Use(ctx, performer, input.ActionID, opts)
	if err != nil {
		return nil, err
	}

	summary := a.Summarize()
	if err := s.uses.Create(ctx, &actionuses.Record{Summary: summary}); err != nil {
		return nil, dnderr.Wrapf(err, "failed to store use %s", a.UseID)
	}

	result := &UseResult{Summary: summary}
	for _, t := range targets {
		if t.Error == nil {
			continue
		}
		dropped := engine.TargetSummary{UUID: t.UUID, Name: t.Name, Error: t.Error.Error()}
		if t.Actor != nil {
			dropped.ActorID = t.Actor.ID()
		}
		result.Dropped = append(result.Dropped, dropped)
	}
	return result, nil
}

func (s *service) Confirm(ctx context.Context, useID string) (*engine.Summary, error) {
	return s.settle(ctx, useID, false)
}

func (s *service) Reverse(ctx context.Context, useID string) (*engine.Summary, error) {
	return s.settle(ctx, useID, true)
}

// settle replays a stored use and confirms or reverses it. Outcome failures
// are reported after the new state is stored.
func (s *service) settle(ctx context.Context, useID string, reverse bool) (*engine.Summary, error) {
	if useID == "" {
		return nil, dnderr.InvalidArgument("use ID is required")
	}

	// The record is read under the use lock so a second settle sees the
	// state the first one stored.
	release := s.settling.Lock(useID)
	defer release()

	record, err := s.uses.Get(ctx, useID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get use")
	}

	unlock := s.locks.Lock(involved(record.Summary)...)
	defer unlock()

	a, err := s.engine.Restore(ctx, record.Summary, s.actors)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to restore use %s", useID)
	}

	wasConfirmed := a.State() == engine.StateConfirmed
	if reverse {
		err = s.engine.Reverse(ctx, a)
	} else {
		err = s.engine.Confirm(ctx, a)
	}
	if err != nil && dnderr.IsFailedPrecondition(err) {
		return nil, err
	}

	summary := a.Summarize()
	if reverse && !wasConfirmed {
		if delErr := s.uses.Delete(ctx, useID); delErr != nil {
			log.Printf("[action] failed to delete discarded use %s: %v", useID, delErr)
		}
		return summary, err
	}

	record.Summary = summary
	if updateErr := s.uses.Update(ctx, record); updateErr != nil {
		log.Printf("[action] failed to store settled use %s: %v", useID, updateErr)
		if err == nil {
			err = dnderr.Wrapf(updateErr, "failed to store use %s", useID)
		}
	}
	return summary, err
}

func (s *service) Available(ctx context.Context, actorID string) ([]*AvailableAction, error) {
	unlock := s.locks.Lock(actorID)
	defer unlock()

	performer, err := s.actors.Get(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}

	var out []*AvailableAction
	for _, a := range s.engine.Available(ctx, performer) {
		out = append(out, &AvailableAction{
			ID:   a.ID,
			Name: a.Name,
			Cost: a.Cost,
			Tags: a.Tags.Names(),
		})
	}
	return out, nil
}

func (s *service) Pending(ctx context.Context, actorID string) ([]*engine.Summary, error) {
	records, err := s.uses.ListByActor(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list uses")
	}

	var out []*engine.Summary
	for _, r := range records {
		if r.Summary.State == engine.StateOutcomesBuilt {
			out = append(out, r.Summary)
		}
	}
	return out, nil
}

func (s *service) StartTurn(ctx context.Context, actorID string) error {
	unlock := s.locks.Lock(actorID)
	defer unlock()

	performer, err := s.actors.Get(ctx, actorID)
	if err != nil {
		return dnderr.Wrap(err, "failed to get actor")
	}
	s.engine.StartTurn(ctx, performer)
	if expired := performer.EndTurn(); len(expired) > 0 {
		log.Printf("[action] %s turn effects expired: %v", actorID, expired)
	}
	return nil
}

func (s *service) EndRound(ctx context.Context) (map[string][]string, error) {
	all, err := s.actors.List(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list actors")
	}

	expired := make(map[string][]string)
	for _, a := range all {
		unlock := s.locks.Lock(a.ID())
		if ids := a.EndRound(); len(ids) > 0 {
			expired[a.ID()] = ids
		}
		unlock()
	}
	return expired, nil
}

// resolveTargets looks target IDs up in the actor repository. Unknown IDs
// become targets carrying an error so validation can drop or reject them.
func (s *service) resolveTargets(ctx context.Context, ids []string) []*engine.Target {
	targets := make([]*engine.Target, 0, len(ids))
	for _, id := range ids {
		t := &engine.Target{UUID: id, Name: id}
		if a, err := s.actors.Get(ctx, id); err != nil {
			t.Error = fmt.Errorf("unknown target %s", id)
		} else {
			t.Actor = a
			t.Name = a.Name()
		}
		targets = append(targets, t)
	}
	return targets
}

func involved(summary *engine.Summary) []string {
	ids := []string{summary.ActorID}
	for _, t := range summary.Targets {
		ids = append(ids, t.ActorID)
	}
	for _, o := range summary.Outcomes {
		ids = append(ids, o.TargetID)
	}
	return ids
}
