package action

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	engine "github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// Service runs action uses for the actors of an encounter and keeps every
// built use in storage until it is confirmed or reversed
type Service interface {
	// RegisterActor adds an actor and initializes every action it knows
	RegisterActor(ctx context.Context, a *actor.Actor) error

	// Use builds the outcomes of one action use and stores them unconfirmed
	Use(ctx context.Context, input *UseInput) (*UseResult, error)

	// Confirm applies a stored use
	Confirm(ctx context.Context, useID string) (*engine.Summary, error)

	// Reverse undoes a confirmed use, or discards an unconfirmed one
	Reverse(ctx context.Context, useID string) (*engine.Summary, error)

	// Available lists the actions an actor could use right now
	Available(ctx context.Context, actorID string) ([]*AvailableAction, error)

	// Pending lists an actor's built but unconfirmed uses, oldest first
	Pending(ctx context.Context, actorID string) ([]*engine.Summary, error)

	// StartTurn clears the actor's per-turn bookkeeping
	StartTurn(ctx context.Context, actorID string) error

	// EndRound ticks round-based effects on every actor and returns the
	// expired effect IDs by actor
	EndRound(ctx context.Context) (map[string][]string, error)
}

// DefinitionSource resolves action definitions by ID
type DefinitionSource interface {
	Definition(id string) (engine.Definition, error)
}

// UseInput contains data for using an action
type UseInput struct {
	ActorID   string
	ActionID  string
	TargetIDs []string
	Token     string

	// Strict fails the use on any invalid target instead of dropping it
	Strict bool
}

// UseResult contains the built, unconfirmed use
type UseResult struct {
	Summary *engine.Summary

	// Dropped lists targets that failed validation and were skipped
	Dropped []engine.TargetSummary
}

// AvailableAction is an action the actor can use now, with its current cost
type AvailableAction struct {
	ID   string
	Name string
	Cost engine.Cost
	Tags []string
}
