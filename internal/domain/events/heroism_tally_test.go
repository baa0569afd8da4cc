package events_test

import (
	"testing"

	"github.com/KirkDiggler/crucible-engine/internal/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroismTally(t *testing.T) {
	bus := events.NewEventBus()
	tally := events.NewHeroismTally()
	tally.Attach(bus)

	confirm := events.NewGameEvent(events.OnActionConfirmed).
		WithActor("hero").
		WithContext(events.ContextHeroism, 2)
	require.NoError(t, bus.Emit(confirm))
	require.NoError(t, bus.Emit(confirm))
	assert.Equal(t, 4, tally.Spent("hero"))

	reverse := events.NewGameEvent(events.OnActionReversed).
		WithActor("hero").
		WithContext(events.ContextHeroism, 2)
	require.NoError(t, bus.Emit(reverse))
	assert.Equal(t, 2, tally.Spent("hero"))

	t.Run("ignores uses without heroism", func(t *testing.T) {
		require.NoError(t, bus.Emit(events.NewGameEvent(events.OnActionConfirmed).WithActor("hero")))
		assert.Equal(t, 2, tally.Spent("hero"))
	})

	t.Run("rejects events without actor", func(t *testing.T) {
		err := bus.Emit(events.NewGameEvent(events.OnActionConfirmed).WithContext(events.ContextHeroism, 1))
		assert.Error(t, err)
	})
}
