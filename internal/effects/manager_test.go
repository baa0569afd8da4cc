package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AddEffect(t *testing.T) {
	manager := NewManager()

	t.Run("adds simple effect", func(t *testing.T) {
		effect := &StatusEffect{
			ID:     "test_effect_1",
			Name:   "Test Effect",
			Source: SourceAction,
		}

		err := manager.AddEffect(effect)
		require.NoError(t, err)

		active := manager.GetActiveEffects()
		assert.Len(t, active, 1)
		assert.Equal(t, "Test Effect", active[0].Name)
	})

	t.Run("rejects effect without ID", func(t *testing.T) {
		effect := &StatusEffect{
			Name:   "No ID Effect",
			Source: SourceAction,
		}

		err := manager.AddEffect(effect)
		assert.Error(t, err)
	})

	t.Run("handles stacking replace", func(t *testing.T) {
		replaceManager := NewManager()

		require.NoError(t, replaceManager.AddEffect(&StatusEffect{
			ID: "mark_1", Name: "Mark", Source: SourceAction, StackingRule: StackingReplace,
		}))
		require.NoError(t, replaceManager.AddEffect(&StatusEffect{
			ID: "mark_2", Name: "Mark", Source: SourceAction, StackingRule: StackingReplace,
		}))

		active := replaceManager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "mark_2", active[0].ID)
	})

	t.Run("handles stacking ignore", func(t *testing.T) {
		ignoreManager := NewManager()

		require.NoError(t, ignoreManager.AddEffect(&StatusEffect{
			ID: "mark_1", Name: "Mark", Source: SourceAction, StackingRule: StackingIgnore,
		}))
		require.NoError(t, ignoreManager.AddEffect(&StatusEffect{
			ID: "mark_2", Name: "Mark", Source: SourceAction, StackingRule: StackingIgnore,
		}))

		active := ignoreManager.GetActiveEffects()
		require.Len(t, active, 1)
		assert.Equal(t, "mark_1", active[0].ID)
	})

	t.Run("re-adding same ID overwrites", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddEffect(&StatusEffect{ID: "a", Name: "A", StackingRule: StackingIgnore}))
		require.NoError(t, m.AddEffect(&StatusEffect{ID: "a", Name: "A", StackingRule: StackingIgnore}))
		assert.Len(t, m.GetActiveEffects(), 1)
	})
}

func TestManager_RemoveEffect(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "A", Statuses: []string{"stunned"}}))

	assert.True(t, manager.HasStatus("stunned"))
	assert.True(t, manager.RemoveEffect("a"))
	assert.False(t, manager.RemoveEffect("a"))
	assert.False(t, manager.HasStatus("stunned"))
}

func TestManager_RemoveEffectsBySource(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "A", Source: SourceAction, SourceID: "disarm"}))
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "b", Name: "B", Source: SourceAction, SourceID: "cleave"}))

	manager.RemoveEffectsBySource(SourceAction, "disarm")

	active := manager.GetActiveEffects()
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].ID)
}

func TestManager_GetEffectReturnsCopy(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(&StatusEffect{ID: "a", Name: "A", Statuses: []string{"slowed"}}))

	got, ok := manager.GetEffect("a")
	require.True(t, ok)
	got.Statuses[0] = "hasted"

	assert.True(t, manager.HasStatus("slowed"))

	_, ok = manager.GetEffect("missing")
	assert.False(t, ok)
}

func TestManager_ProcessRoundEnd(t *testing.T) {
	manager := NewManager()

	require.NoError(t, manager.AddEffect(NewBuilder("Short").WithID("short").
		WithDuration(Duration{Type: DurationRounds, Rounds: 1}).Build()))
	require.NoError(t, manager.AddEffect(NewBuilder("Long").WithID("long").
		WithDuration(Duration{Type: DurationRounds, Rounds: 2}).Build()))
	require.NoError(t, manager.AddEffect(NewBuilder("Turn").WithID("turn").
		WithDuration(Duration{Type: DurationTurns, Turns: 1}).Build()))
	require.NoError(t, manager.AddEffect(NewBuilder("Forever").WithID("forever").Build()))

	assert.Equal(t, []string{"short"}, manager.ProcessRoundEnd())
	assert.Len(t, manager.GetActiveEffects(), 3)

	assert.Equal(t, []string{"long"}, manager.ProcessRoundEnd())
	assert.Equal(t, []string{"turn"}, manager.ProcessTurnEnd())

	active := manager.GetActiveEffects()
	require.Len(t, active, 1)
	assert.Equal(t, "forever", active[0].ID)
}

func TestManager_InstantEffectsNeverActive(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.AddEffect(NewBuilder("Flash").WithID("flash").
		WithDuration(Duration{Type: DurationInstant}).WithStatuses("blinded").Build()))

	assert.Empty(t, manager.GetActiveEffects())
	assert.False(t, manager.HasStatus("blinded"))
	assert.Equal(t, []string{"flash"}, manager.ProcessRoundEnd())
}
