package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"normtest/domain/core"
	"normtest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(createdAt time.Time) *models.ResultRecord {
	return &models.ResultRecord{ID: core.NewResultID(), TestID: "shapiro_wilk", CreatedAt: createdAt}
}

func TestResultRepository_SaveGet(t *testing.T) {
	repo := NewResultRepository()
	ctx := context.Background()

	rec := record(time.Now())
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	// callers get copies
	got.TestID = "changed"
	again, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "shapiro_wilk", string(again.TestID))

	_, err = repo.GetByID(ctx, core.NewResultID())
	assert.True(t, core.IsNotFoundError(err))
}

func TestResultRepository_ListRecent(t *testing.T) {
	repo := NewResultRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []core.ResultID
	for i := 0; i < 5; i++ {
		rec := record(base.Add(time.Duration(i) * time.Minute))
		ids = append(ids, rec.ID)
		require.NoError(t, repo.Save(ctx, rec))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[4], recent[0].ID)
	assert.Equal(t, ids[3], recent[1].ID)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestResultRepository_ConcurrentSaves(t *testing.T) {
	repo := NewResultRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, record(time.Now())))
		}()
	}
	wg.Wait()

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestResultRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewResultRepository().Save(ctx, record(time.Now())), context.Canceled)
}
