package actionuses_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses/mocks"
)

func TestInMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockTimeProvider(ctrl)

	t1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)
	t3 := t2.Add(time.Second)
	clock.EXPECT().Now().Return(t1)
	clock.EXPECT().Now().Return(t2)
	clock.EXPECT().Now().Return(t3)

	repo := actionuses.NewInMemoryRepository(clock)

	require.NoError(t, repo.Create(ctx, &actionuses.Record{Summary: newSummary("use-2", "hero")}))
	require.NoError(t, repo.Create(ctx, &actionuses.Record{Summary: newSummary("use-1", "hero")}))
	require.NoError(t, repo.Create(ctx, &actionuses.Record{Summary: newSummary("use-3", "goblin")}))

	assert.Error(t, repo.Create(ctx, &actionuses.Record{Summary: newSummary("use-1", "hero")}), "duplicate")

	records, err := repo.ListByActor(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "use-2", records[0].ID(), "ordered by creation")
	assert.Equal(t, "use-1", records[1].ID())

	require.NoError(t, repo.Delete(ctx, "use-2"))
	records, err = repo.ListByActor(ctx, "hero")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = repo.Get(ctx, "use-2")
	assert.True(t, dnderr.IsNotFound(err))
	assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "use-2")))
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := actionuses.NewInMemoryRepository(nil)

	summary := newSummary("use-1", "hero")
	require.NoError(t, repo.Create(ctx, &actionuses.Record{Summary: summary}))

	summary.State = action.StateReversed
	summary.Usage.Flags["moves"] = 3

	got, err := repo.Get(ctx, "use-1")
	require.NoError(t, err)
	assert.Equal(t, action.StateOutcomesBuilt, got.Summary.State)
	assert.Zero(t, got.Summary.Usage.Flags["moves"])

	got.Summary.Tags[0] = "changed"
	again, err := repo.Get(ctx, "use-1")
	require.NoError(t, err)
	assert.Equal(t, "attack", again.Summary.Tags[0])
}

func TestInMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := actionuses.NewInMemoryRepository(nil)

	missing := &actionuses.Record{Summary: newSummary("use-1", "hero")}
	assert.True(t, dnderr.IsNotFound(repo.Update(ctx, missing)))

	require.NoError(t, repo.Create(ctx, missing))
	created := missing.CreatedAt

	missing.Summary.State = action.StateConfirmed
	require.NoError(t, repo.Update(ctx, missing))

	got, err := repo.Get(ctx, "use-1")
	require.NoError(t, err)
	assert.Equal(t, action.StateConfirmed, got.Summary.State)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.False(t, got.UpdatedAt.Before(created))
}
