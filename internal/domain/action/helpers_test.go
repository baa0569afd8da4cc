package action_test

import (
	"context"
	"maps"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

type applyCall struct {
	useID   string
	outcome *action.Outcome
	reverse bool
}

// testActor is a minimal in-memory actor for engine tests
type testActor struct {
	id          string
	name        string
	disposition action.Disposition
	pools       map[string]int
	statuses    map[string]bool
	ability     int
	defense     int
	resistance  int
	loadout     *equipment.Loadout
	flags       map[string]any
	applied     []applyCall
	applyErr    error
}

func newTestActor(id string, disposition action.Disposition) *testActor {
	return &testActor{
		id:          id,
		name:        id,
		disposition: disposition,
		pools: map[string]int{
			action.ResourceHealth:  20,
			action.ResourceAction:  3,
			action.ResourceFocus:   2,
			action.ResourceHeroism: 1,
		},
		statuses: map[string]bool{},
		defense:  10,
		loadout: &equipment.Loadout{
			Mainhand: &equipment.Weapon{ID: "sword", Name: "Sword", Category: equipment.CategoryMelee, Damage: 4, DamageType: "slashing", Range: 1, Hands: 1},
		},
		flags: map[string]any{},
	}
}

func (t *testActor) ID() string { return t.id }
func (t *testActor) Name() string { return t.name }
func (t *testActor) Disposition() action.Disposition { return t.disposition }
func (t *testActor) HasStatus(status string) bool { return t.statuses[status] }
func (t *testActor) AbilityBonus(string) int { return t.ability }
func (t *testActor) SkillBonus(string) int { return 0 }
func (t *testActor) Defense(string) int { return t.defense }
func (t *testActor) Resistance(string) int { return t.resistance }
func (t *testActor) Weapons() *equipment.Loadout { return t.loadout }
func (t *testActor) UpdateFlags(flags map[string]any) { maps.Copy(t.flags, flags) }

func (t *testActor) Pool(name string) (int, int) {
	return t.pools[name], t.pools[name]
}

func (t *testActor) ApplyActionOutcome(_ context.Context, a *action.Action, o *action.Outcome, opts action.ApplyOptions) error {
	if t.applyErr != nil {
		return t.applyErr
	}
	t.applied = append(t.applied, applyCall{useID: a.UseID, outcome: o, reverse: opts.Reverse})
	sign := 1
	if opts.Reverse {
		sign = -1
	}
	for pool, delta := range o.Resources {
		t.pools[pool] += sign * delta
	}
	return nil
}

// actorDirectory resolves test actors by ID
type actorDirectory map[string]action.Actor

func (d actorDirectory) ResolveActor(_ context.Context, id string) (action.Actor, error) {
	if a, ok := d[id]; ok {
		return a, nil
	}
	return nil, context.Canceled
}

func targetsOf(actors ...action.Actor) action.TargetAcquirer {
	return action.TargetAcquirerFunc(func(context.Context, *action.Action) ([]*action.Target, error) {
		targets := make([]*action.Target, len(actors))
		for i, a := range actors {
			targets[i] = &action.Target{Actor: a, UUID: a.ID(), Name: a.Name()}
		}
		return targets, nil
	})
}
