package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedWindowService(t *testing.T, repo *fakeWindowRepo) *WindowService {
	t.Helper()
	svc := NewWindowService(repo)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestIsOpenInclusiveBounds(t *testing.T) {
	start := time.Date(2026, 1, 6, 8, 0, 0, 0, time.Local)
	end := time.Date(2026, 1, 10, 23, 59, 59, 0, time.Local)

	repo := newFakeWindowRepo(models.VotingWindow{ID: models.WindowRowID, StartsAt: start, EndsAt: end})
	svc := loadedWindowService(t, repo)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", start.Add(-time.Second), false},
		{"exactly at start", start, true},
		{"mid window", start.Add(48 * time.Hour), true},
		{"exactly at end", end, true},
		{"after end", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.now }
			assert.Equal(t, tt.want, svc.IsOpen())

			open, gotStart, gotEnd := svc.Status()
			assert.Equal(t, tt.want, open)
			assert.True(t, gotStart.Equal(start))
			assert.True(t, gotEnd.Equal(end))
		})
	}
}

func TestSetPeriodPersistsAndTakesEffect(t *testing.T) {
	now := time.Now()
	repo := newFakeWindowRepo(models.VotingWindow{
		ID:       models.WindowRowID,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	})
	svc := loadedWindowService(t, repo)
	require.True(t, svc.IsOpen())

	// Move the whole window into the past
	require.NoError(t, svc.SetPeriod(context.Background(), now.Add(-3*time.Hour), now.Add(-2*time.Hour)))
	assert.False(t, svc.IsOpen(), "new bounds apply to the very next check")

	persisted, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, persisted.EndsAt.Equal(now.Add(-2*time.Hour)))
}

func TestOpenNow(t *testing.T) {
	now := time.Now()
	repo := newFakeWindowRepo(models.VotingWindow{
		ID:       models.WindowRowID,
		StartsAt: now.Add(time.Hour), // not open yet
		EndsAt:   now.Add(2 * time.Hour),
	})
	svc := loadedWindowService(t, repo)
	require.False(t, svc.IsOpen())

	require.NoError(t, svc.OpenNow(context.Background()))
	assert.True(t, svc.IsOpen())

	_, _, end := svc.Status()
	assert.Equal(t, 2030, end.Year(), "end should be pushed to the far-future sentinel")
}

func TestCloseNow(t *testing.T) {
	now := time.Now()
	start := now.Add(-time.Hour)
	repo := newFakeWindowRepo(models.VotingWindow{
		ID:       models.WindowRowID,
		StartsAt: start,
		EndsAt:   now.Add(time.Hour),
	})
	svc := loadedWindowService(t, repo)
	require.True(t, svc.IsOpen())

	require.NoError(t, svc.CloseNow(context.Background()))
	assert.False(t, svc.IsOpen())

	_, gotStart, _ := svc.Status()
	assert.True(t, gotStart.Equal(start), "start must be left untouched")
}

func TestWindowMutationKeepsCacheOnStorageFailure(t *testing.T) {
	now := time.Now()
	repo := newFakeWindowRepo(models.VotingWindow{
		ID:       models.WindowRowID,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	})
	svc := loadedWindowService(t, repo)

	repo.err = errors.New("connection lost")
	err := svc.CloseNow(context.Background())
	require.Error(t, err)

	// The in-memory window still reflects the last persisted state
	assert.True(t, svc.IsOpen())
}

func TestLoadPropagatesStorageError(t *testing.T) {
	repo := newFakeWindowRepo(models.VotingWindow{})
	repo.err = errors.New("no such table")

	svc := NewWindowService(repo)
	assert.Error(t, svc.Load(context.Background()))
}
