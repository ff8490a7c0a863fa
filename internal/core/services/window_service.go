package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
)

// windowEpsilon backdates OpenNow/CloseNow so the change is effective for
// the very next request regardless of clock granularity.
const windowEpsilon = time.Second

// farFutureEnd is the sentinel end used by OpenNow.
var farFutureEnd = time.Date(2030, 12, 31, 23, 59, 59, 0, time.Local)

// WindowService controls the voting window. The persisted row is cached
// in memory behind a RWMutex so status reads never touch storage; every
// admin mutation persists first and only then updates the cache, keeping
// the in-memory state intact when storage fails.
type WindowService struct {
	windowRepo repositories.VotingWindowRepository

	mu     sync.RWMutex
	window models.VotingWindow

	now func() time.Time
}

// NewWindowService creates a new voting window service
func NewWindowService(windowRepo repositories.VotingWindowRepository) *WindowService {
	return &WindowService{
		windowRepo: windowRepo,
		now:        time.Now,
	}
}

// Load reads the persisted window into the cache. Called once at boot,
// after the seeder has guaranteed the row exists.
func (s *WindowService) Load(ctx context.Context) error {
	window, err := s.windowRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading voting window: %w", err)
	}

	s.mu.Lock()
	s.window = *window
	s.mu.Unlock()

	return nil
}

// IsOpen reports whether casting is permitted right now. Both bounds are
// inclusive.
func (s *WindowService) IsOpen() bool {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return !now.Before(s.window.StartsAt) && !now.After(s.window.EndsAt)
}

// Status returns the open flag and the current bounds.
func (s *WindowService) Status() (open bool, start, end time.Time) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	open = !now.Before(s.window.StartsAt) && !now.After(s.window.EndsAt)
	return open, s.window.StartsAt, s.window.EndsAt
}

// SetPeriod replaces both bounds. Effective immediately for every
// subsequent status check; there is no grace period for in-flight
// requests.
func (s *WindowService) SetPeriod(ctx context.Context, start, end time.Time) error {
	return s.save(ctx, models.VotingWindow{StartsAt: start, EndsAt: end})
}

// OpenNow makes the window immediately inclusive and pushes the end to a
// far-future sentinel.
func (s *WindowService) OpenNow(ctx context.Context) error {
	return s.save(ctx, models.VotingWindow{
		StartsAt: s.now().Add(-windowEpsilon),
		EndsAt:   farFutureEnd,
	})
}

// CloseNow ends the window immediately. The start is left untouched so
// clock drift cannot silently reopen it.
func (s *WindowService) CloseNow(ctx context.Context) error {
	s.mu.RLock()
	start := s.window.StartsAt
	s.mu.RUnlock()

	return s.save(ctx, models.VotingWindow{
		StartsAt: start,
		EndsAt:   s.now().Add(-windowEpsilon),
	})
}

func (s *WindowService) save(ctx context.Context, window models.VotingWindow) error {
	if err := s.windowRepo.Save(ctx, &window); err != nil {
		return fmt.Errorf("persisting voting window: %w", err)
	}

	s.mu.Lock()
	s.window = window
	s.mu.Unlock()

	log.Printf("✅ Voting window updated: %s → %s",
		window.StartsAt.Format(time.RFC3339),
		window.EndsAt.Format(time.RFC3339),
	)
	return nil
}
