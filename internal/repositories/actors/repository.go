package actors

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
)

// Repository holds the live actors of an encounter. It also resolves actors
// for the engine when stored uses are replayed.
type Repository interface {
	action.ActorResolver

	Add(ctx context.Context, a *actor.Actor) error
	Get(ctx context.Context, id string) (*actor.Actor, error)
	List(ctx context.Context) ([]*actor.Actor, error)
	Remove(ctx context.Context, id string) error
}
