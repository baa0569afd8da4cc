package actors

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	"github.com/KirkDiggler/crucible-engine/internal/repositories"
)

// inMemoryRepository implements Repository using in-memory storage. Actors
// are live objects so they are shared, not copied.
type inMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string]*actor.Actor
}

// NewInMemoryRepository creates a new in-memory actor repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		actors: make(map[string]*actor.Actor),
	}
}

func (r *inMemoryRepository) Add(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return fmt.Errorf("actor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[a.ID()]; exists {
		return fmt.Errorf("actor with ID %s already exists", a.ID())
	}
	r.actors[a.ID()] = a
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.actors[id]
	if !exists {
		return nil, repositories.NewRecordNotFoundError(id)
	}
	return a, nil
}

// List returns every actor ordered by ID
func (r *inMemoryRepository) List(ctx context.Context) ([]*actor.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*actor.Actor, 0, len(r.actors))
	for _, id := range slices.Sorted(maps.Keys(r.actors)) {
		out = append(out, r.actors[id])
	}
	return out, nil
}

func (r *inMemoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return repositories.NewRecordNotFoundError(id)
	}
	delete(r.actors, id)
	return nil
}

// ResolveActor implements action.ActorResolver
func (r *inMemoryRepository) ResolveActor(ctx context.Context, id string) (action.Actor, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a, nil
}
