package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
)

func newFighter(t *testing.T) *actor.Actor {
	t.Helper()
	a, err := actor.New(actor.Sheet{
		ID:          "fighter",
		Name:        "Fighter",
		Disposition: "friendly",
		Pools:       map[string]int{"health": 20, "action": 3},
		Defenses:    map[string]int{"physical": 14},
		Loadout: &equipment.Loadout{
			Mainhand:   &equipment.Weapon{ID: "longsword", Name: "Longsword", Category: equipment.CategoryMelee, Damage: 6, Range: 1},
			Ammunition: map[string]int{"arrows": 5},
		},
	})
	require.NoError(t, err)
	return a
}

func outcomeFor(a *actor.Actor) *action.Outcome {
	return action.NewOutcome(a)
}

func TestNew_Validation(t *testing.T) {
	_, err := actor.New(actor.Sheet{Name: "Nobody"})
	assert.Error(t, err)

	_, err = actor.New(actor.Sheet{ID: "x", Name: "X", Disposition: "grumpy"})
	assert.Error(t, err)

	a, err := actor.New(actor.Sheet{ID: "x", Name: "X", Disposition: "hostile"})
	require.NoError(t, err)
	assert.Equal(t, action.DispositionHostile, a.Disposition())
	assert.Equal(t, 10, a.Defense("magical"))
}

func TestActor_PoolsStartFull(t *testing.T) {
	a := newFighter(t)

	current, maximum := a.Pool("health")
	assert.Equal(t, 20, current)
	assert.Equal(t, 20, maximum)

	current, maximum = a.Pool("mana")
	assert.Zero(t, current)
	assert.Zero(t, maximum)
}

func TestActor_ApplyAndReverse(t *testing.T) {
	ctx := context.Background()
	a := newFighter(t)
	use := &action.Action{UseID: "use-1"}

	o := outcomeFor(a)
	o.Resources["health"] = -25
	o.Resources["action"] = -1
	o.Statuses["prone"] = true
	o.ActorUpdates["equipment.mainhand.dropped"] = true
	o.ActorUpdates["ammunition.arrows"] = float64(-2)
	o.ActorUpdates["marked_by"] = "rogue"
	o.Effects = append(o.Effects, effects.NewBuilder("Staggered").
		WithID("use-1.0.fighter").
		WithDuration(effects.Duration{Type: effects.DurationRounds, Rounds: 1}).
		WithStatuses("staggered").
		Build())
	o.Summons = append(o.Summons, action.Summon{ID: "wolf-1", Name: "Wolf"})

	require.NoError(t, a.ApplyActionOutcome(ctx, use, o, action.ApplyOptions{}))

	current, _ := a.Pool("health")
	assert.Equal(t, 0, current, "health clamps at zero")
	current, _ = a.Pool("action")
	assert.Equal(t, 2, current)
	assert.True(t, a.HasStatus("prone"))
	assert.True(t, a.HasStatus("staggered"))
	assert.True(t, a.HasStatus(actor.StatusUnconscious))
	assert.True(t, a.Weapons().Mainhand.Dropped)
	assert.Equal(t, 3, a.Weapons().Ammunition["arrows"])
	flag, ok := a.Flag("marked_by")
	assert.True(t, ok)
	assert.Equal(t, "rogue", flag)
	assert.Len(t, a.Summons(), 1)
	assert.True(t, a.Applied("use-1"))

	// Applying twice is a no-op
	require.NoError(t, a.ApplyActionOutcome(ctx, use, o, action.ApplyOptions{}))
	current, _ = a.Pool("action")
	assert.Equal(t, 2, current)

	require.NoError(t, a.ApplyActionOutcome(ctx, use, o, action.ApplyOptions{Reverse: true}))

	current, _ = a.Pool("health")
	assert.Equal(t, 20, current, "reverse restores only what was applied")
	current, _ = a.Pool("action")
	assert.Equal(t, 3, current)
	assert.False(t, a.HasStatus("prone"))
	assert.False(t, a.HasStatus("staggered"))
	assert.False(t, a.HasStatus(actor.StatusUnconscious))
	assert.False(t, a.Weapons().Mainhand.Dropped)
	assert.Equal(t, 5, a.Weapons().Ammunition["arrows"])
	_, ok = a.Flag("marked_by")
	assert.False(t, ok)
	assert.Empty(t, a.Summons())
	assert.False(t, a.Applied("use-1"))

	// Reversing twice is a no-op
	require.NoError(t, a.ApplyActionOutcome(ctx, use, o, action.ApplyOptions{Reverse: true}))
	current, _ = a.Pool("health")
	assert.Equal(t, 20, current)
}

func TestActor_ReverseRestoresReplacedEffect(t *testing.T) {
	ctx := context.Background()
	a := newFighter(t)

	first := outcomeFor(a)
	first.Effects = append(first.Effects, effects.NewBuilder("Blessed").
		WithID("bless-1").
		WithStatuses("blessed").
		WithStackingRule(effects.StackingReplace).
		Build())
	require.NoError(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u1"}, first, action.ApplyOptions{}))

	second := outcomeFor(a)
	second.Effects = append(second.Effects, effects.NewBuilder("Blessed").
		WithID("bless-2").
		WithStatuses("blessed").
		WithStackingRule(effects.StackingReplace).
		Build())
	require.NoError(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u2"}, second, action.ApplyOptions{}))

	ids := func() []string {
		var out []string
		for _, e := range a.Effects() {
			out = append(out, e.ID)
		}
		return out
	}
	assert.Equal(t, []string{"bless-2"}, ids())

	require.NoError(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u2"}, second, action.ApplyOptions{Reverse: true}))
	assert.Equal(t, []string{"bless-1"}, ids())
}

func TestActor_ApplyRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	a := newFighter(t)
	other, err := actor.New(actor.Sheet{ID: "goblin", Name: "Goblin"})
	require.NoError(t, err)

	assert.Error(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u"}, action.NewOutcome(other), action.ApplyOptions{}))

	o := outcomeFor(a)
	o.Resources["action"] = -1
	o.ActorUpdates["ammunition.arrows"] = "lots"
	assert.Error(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u"}, o, action.ApplyOptions{}))

	current, _ := a.Pool("action")
	assert.Equal(t, 3, current, "failed apply leaves no partial changes")
	assert.False(t, a.Applied("u"))
}

func TestActor_EffectsExpire(t *testing.T) {
	ctx := context.Background()
	a := newFighter(t)

	o := outcomeFor(a)
	o.Effects = append(o.Effects, effects.NewBuilder("Dazed").
		WithID("dazed").
		WithDuration(effects.Duration{Type: effects.DurationRounds, Rounds: 1}).
		WithStatuses("dazed").
		Build())
	require.NoError(t, a.ApplyActionOutcome(ctx, &action.Action{UseID: "u"}, o, action.ApplyOptions{}))
	assert.Equal(t, []string{"dazed"}, a.Statuses())

	assert.Equal(t, []string{"dazed"}, a.EndRound())
	assert.Empty(t, a.Statuses())
}

func TestActor_WeaponsIsACopy(t *testing.T) {
	a := newFighter(t)

	w := a.Weapons()
	w.Mainhand.Broken = true
	w.Ammunition["arrows"] = 0

	assert.False(t, a.Weapons().Mainhand.Broken)
	assert.Equal(t, 5, a.Weapons().Ammunition["arrows"])
}

func TestActor_String(t *testing.T) {
	a := newFighter(t)
	a.SetPool("health", 7)

	assert.Equal(t, "Fighter [action 3/3, health 7/20]", a.String())
}
