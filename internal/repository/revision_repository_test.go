package repository

import (
	"TrailGuide/internal/models"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionRepository_InsertAtFirstRevision(t *testing.T) {
	db := setupContentDB(t)
	stationRepo := NewRevisionRepository[models.Station](db)
	ctx := context.Background()

	station := newStation("s1", "Lookout", "blue", 0)
	err := stationRepo.InsertAt(ctx, station, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, station.Revision.Number)

	latest, err := stationRepo.LatestRevision(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 1, latest)
}

func TestRevisionRepository_CurrentFollowsLatest(t *testing.T) {
	db := setupContentDB(t)
	stationRepo := NewRevisionRepository[models.Station](db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		station := newStation("s1", "Lookout", "blue", i)
		require.NoError(t, stationRepo.InsertAt(ctx, station, i))
	}

	current, err := stationRepo.FindCurrent(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, current.Revision.Number)
	assert.Equal(t, 2, current.Rank)

	history, err := stationRepo.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, info := range history {
		assert.Equal(t, i+1, info.Number)
	}

	third, err := stationRepo.FindRevision(ctx, "s1", 3)
	require.NoError(t, err)
	assert.Equal(t, current.Title, third.Title)
	assert.Equal(t, current.Rank, third.Rank)
}

func TestRevisionRepository_StalePriorConflicts(t *testing.T) {
	db := setupContentDB(t)
	stationRepo := NewRevisionRepository[models.Station](db)
	ctx := context.Background()

	require.NoError(t, stationRepo.InsertAt(ctx, newStation("s1", "Lookout", "blue", 0), 0))

	// Two writers that both read revision 1.
	err := stationRepo.InsertAt(ctx, newStation("s1", "Lookout A", "blue", 0), 1)
	require.NoError(t, err)
	err = stationRepo.InsertAt(ctx, newStation("s1", "Lookout B", "blue", 0), 1)

	var conflict *models.ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, 1, conflict.Expected)

	history, err := stationRepo.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	current, err := stationRepo.FindCurrent(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Lookout A", current.Title)
}

func TestRevisionRepository_ConcurrentWritersOneWins(t *testing.T) {
	db := setupContentDB(t)
	stationRepo := NewRevisionRepository[models.Station](db)
	ctx := context.Background()

	require.NoError(t, stationRepo.InsertAt(ctx, newStation("s1", "Lookout", "blue", 0), 0))

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = stationRepo.InsertAt(ctx, newStation("s1", "Lookout", "blue", i), 1)
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, models.ErrConflict):
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	history, err := stationRepo.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRevisionRepository_SecondCreateOfNewIDConflicts(t *testing.T) {
	db := setupContentDB(t)
	pageRepo := NewRevisionRepository[models.Page](db)
	ctx := context.Background()

	require.NoError(t, pageRepo.InsertAt(ctx, &models.Page{ID: "about", Title: "About"}, 0))
	err := pageRepo.InsertAt(ctx, &models.Page{ID: "about", Title: "About us"}, 0)

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRevisionRepository_NotFound(t *testing.T) {
	db := setupContentDB(t)
	modalRepo := NewRevisionRepository[models.Modal](db)
	ctx := context.Background()

	_, err := modalRepo.FindCurrent(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = modalRepo.FindRevision(ctx, "missing", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = modalRepo.History(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	latest, err := modalRepo.LatestRevision(ctx, "missing")
	assert.NoError(t, err)
	assert.Zero(t, latest)
}

func TestRevisionRepository_ListCurrentFiltersAndOrders(t *testing.T) {
	db := setupContentDB(t)
	stationRepo := NewRevisionRepository[models.Station](db)
	ctx := context.Background()

	require.NoError(t, stationRepo.InsertAt(ctx, newStation("b", "Bridge", "blue", 1), 0))
	require.NoError(t, stationRepo.InsertAt(ctx, newStation("a", "Alder", "blue", 1), 0))
	require.NoError(t, stationRepo.InsertAt(ctx, newStation("c", "Creek", "red", 0), 0))

	hidden := newStation("d", "Dam", "red", 0)
	hidden.Deleted = true
	require.NoError(t, stationRepo.InsertAt(ctx, hidden, 0))

	notDeleted := false
	stations, err := stationRepo.ListCurrent(ctx, models.CurrentFilter{Deleted: &notDeleted})
	require.NoError(t, err)
	require.Len(t, stations, 3)
	assert.Equal(t, "c", stations[0].ID)
	assert.Equal(t, "a", stations[1].ID)
	assert.Equal(t, "b", stations[2].ID)

	blue, err := stationRepo.ListCurrent(ctx, models.CurrentFilter{Section: "blue"})
	require.NoError(t, err)
	assert.Len(t, blue, 2)
}
