package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crucible-engine/internal/content"
	mockdice "github.com/KirkDiggler/crucible-engine/internal/dice/mock"
	"github.com/KirkDiggler/crucible-engine/internal/scripting"
	"github.com/KirkDiggler/crucible-engine/internal/services"
	actionService "github.com/KirkDiggler/crucible-engine/internal/services/action"
)

func loadLibrary(t *testing.T) *content.Library {
	t.Helper()
	compiler, err := scripting.NewCompiler()
	require.NoError(t, err)
	lib := content.NewLibrary(compiler)
	require.NoError(t, lib.LoadDir("../../content"))
	return lib
}

func TestNewProviderRequiresDefinitions(t *testing.T) {
	_, err := services.NewProvider(&services.ProviderConfig{})
	assert.Error(t, err)
}

func TestProviderRunsSampleContent(t *testing.T) {
	ctx := context.Background()
	lib := loadLibrary(t)
	roller := mockdice.NewManualMockRoller()

	provider, err := services.NewProvider(&services.ProviderConfig{
		Definitions: lib,
		Roller:      roller,
	})
	require.NoError(t, err)

	for _, id := range []string{"fighter", "goblin"} {
		a, err := lib.NewActor(id)
		require.NoError(t, err)
		require.NoError(t, provider.ActionService.RegisterActor(ctx, a))
	}

	result, err := provider.ActionService.Use(ctx, &actionService.UseInput{ActorID: "fighter", ActionID: "call-wolf"})
	require.NoError(t, err)

	_, err = provider.ActionService.Confirm(ctx, result.Summary.UseID)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.Heroism.Spent("fighter"))

	fighter, err := provider.Actors.Get(ctx, "fighter")
	require.NoError(t, err)
	require.Len(t, fighter.Summons(), 1)
	assert.Equal(t, "wolf", fighter.Summons()[0].Template)

	_, err = provider.ActionService.Reverse(ctx, result.Summary.UseID)
	require.NoError(t, err)
	assert.Equal(t, 0, provider.Heroism.Spent("fighter"))
	assert.Empty(t, fighter.Summons())
}
