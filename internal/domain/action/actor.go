package action

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

//go:generate mockgen -destination=mock/mock_actor.go -package=mockaction -source=actor.go

// Disposition is which side of a fight an actor is on
type Disposition int

const (
	DispositionHostile  Disposition = -1
	DispositionNeutral  Disposition = 0
	DispositionFriendly Disposition = 1
)

// ApplyOptions controls how an outcome is applied to an actor
type ApplyOptions struct {
	Reverse bool
}

// Actor is the engine's view of a combatant
type Actor interface {
	ID() string
	Name() string
	Disposition() Disposition

	// Pool returns the current and maximum of a named resource pool
	Pool(name string) (current, maximum int)
	HasStatus(status string) bool
	AbilityBonus(ability string) int
	SkillBonus(skill string) int
	Defense(kind string) int
	Resistance(damageType string) int
	Weapons() *equipment.Loadout

	// UpdateFlags applies flags immediately, outside of confirm
	UpdateFlags(flags map[string]any)

	// ApplyActionOutcome applies (or with Reverse, un-applies) one outcome
	ApplyActionOutcome(ctx context.Context, a *Action, o *Outcome, opts ApplyOptions) error
}

// ActorResolver looks actors up by ID when replaying stored uses
type ActorResolver interface {
	ResolveActor(ctx context.Context, id string) (Actor, error)
}

// TargetAcquirer selects targets for an action
type TargetAcquirer interface {
	AcquireTargets(ctx context.Context, a *Action) ([]*Target, error)
}

// Configurer lets a user adjust or cancel a use after eligibility. Returning
// false cancels the use.
type Configurer interface {
	Configure(ctx context.Context, a *Action) (bool, error)
}

// TargetAcquirerFunc adapts a function to TargetAcquirer
type TargetAcquirerFunc func(ctx context.Context, a *Action) ([]*Target, error)

func (f TargetAcquirerFunc) AcquireTargets(ctx context.Context, a *Action) ([]*Target, error) {
	return f(ctx, a)
}

// ConfigurerFunc adapts a function to Configurer
type ConfigurerFunc func(ctx context.Context, a *Action) (bool, error)

func (f ConfigurerFunc) Configure(ctx context.Context, a *Action) (bool, error) {
	return f(ctx, a)
}

// RangeFunc measures the distance from the action's performer to a target
type RangeFunc func(ctx context.Context, a *Action, t *Target) (int, error)

// Target is an acquired target descriptor
type Target struct {
	Actor Actor
	Token string
	UUID  string
	Name  string
	Error error

	// Index is the target's position in acquisition order
	Index int
}

// Relationship is how a target relates to the acting actor
type Relationship int

const (
	RelationSelf Relationship = iota
	RelationAlly
	RelationEnemy
)

// Relate classifies target relative to actor. Matching dispositions are
// allies; anything else is an enemy.
func Relate(actor, target Actor) Relationship {
	if actor.ID() == target.ID() {
		return RelationSelf
	}
	if actor.Disposition() == target.Disposition() {
		return RelationAlly
	}
	return RelationEnemy
}
