package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/credential"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VotingService enforces the one-ballot-per-voter invariant and the
// voting window gate.
type VotingService struct {
	ballotRepo    repositories.BallotRepository
	studentRepo   repositories.StudentRepository
	candidateRepo repositories.CandidateRepository
	windows       *WindowService

	fingerprintSecret string

	// mu serializes the voted-set check against the ballot append. The
	// expected load is a single school election, so a global write lock
	// is fine; the fingerprint primary key catches anything that slips
	// through anyway.
	mu sync.Mutex

	now func() time.Time
}

// NewVotingService creates a new voting service
func NewVotingService(
	ballotRepo repositories.BallotRepository,
	studentRepo repositories.StudentRepository,
	candidateRepo repositories.CandidateRepository,
	windows *WindowService,
	fingerprintSecret string,
) *VotingService {
	return &VotingService{
		ballotRepo:        ballotRepo,
		studentRepo:       studentRepo,
		candidateRepo:     candidateRepo,
		windows:           windows,
		fingerprintSecret: fingerprintSecret,
		now:               time.Now,
	}
}

// CastInput represents a ballot submission
type CastInput struct {
	StudentID     string
	President     string
	VicePresident string
	Secretary     string
}

// Cast records a ballot. The ballot row never carries the student ID;
// only the keyed fingerprint enters the voted set.
func (s *VotingService) Cast(ctx context.Context, input *CastInput) (string, error) {
	if input.StudentID == "" || input.President == "" || input.VicePresident == "" || input.Secretary == "" {
		return "", domain.ErrValidation
	}

	if !s.windows.IsOpen() {
		return "", domain.ErrVotingClosed
	}

	fp := credential.Fingerprint(normalizeStudentID(input.StudentID), s.fingerprintSecret)

	s.mu.Lock()
	defer s.mu.Unlock()

	voted, err := s.ballotRepo.HasVoted(ctx, fp)
	if err != nil {
		return "", err
	}
	if voted {
		return "", domain.ErrAlreadyVoted
	}

	refCode, err := credential.NewReferenceCode()
	if err != nil {
		return "", err
	}

	ballot := &models.Ballot{
		ID:            uuid.New().String(),
		President:     input.President,
		VicePresident: input.VicePresident,
		Secretary:     input.Secretary,
		CastAt:        s.now(),
		RefCode:       refCode,
	}

	if err := s.ballotRepo.CreateWithFingerprint(ctx, ballot, fp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrAlreadyVoted
		}
		return "", err
	}

	log.Printf("✅ Ballot recorded: %s", refCode)
	return refCode, nil
}

// ElectionResults is the read-side projection over all recorded ballots
type ElectionResults struct {
	Counts map[string]map[string]int `json:"counts"`
	Total  int                       `json:"total"`
}

// Results aggregates counts per candidate per office. Every seeded
// candidate appears with at least a zero count.
func (s *VotingService) Results(ctx context.Context) (*ElectionResults, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]map[string]int{
		models.OfficePresident:     {},
		models.OfficeVicePresident: {},
		models.OfficeSecretary:     {},
	}
	for _, c := range candidates {
		if _, ok := counts[c.Office]; !ok {
			counts[c.Office] = map[string]int{}
		}
		counts[c.Office][c.Name] = 0
	}

	ballots, err := s.ballotRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range ballots {
		if b.President != "" {
			counts[models.OfficePresident][b.President]++
		}
		if b.VicePresident != "" {
			counts[models.OfficeVicePresident][b.VicePresident]++
		}
		if b.Secretary != "" {
			counts[models.OfficeSecretary][b.Secretary]++
		}
	}

	return &ElectionResults{Counts: counts, Total: len(ballots)}, nil
}

// Reset wipes all ballots and the voted-fingerprint set
func (s *VotingService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ballotRepo.ResetAll(ctx); err != nil {
		return err
	}

	log.Println("🗑️ All ballots and voted fingerprints cleared")
	return nil
}

// TurnoutStats summarizes election participation for the admin dashboard
type TurnoutStats struct {
	RegisteredStudents int64   `json:"registered_students"`
	BallotsCast        int64   `json:"ballots_cast"`
	TurnoutPercent     float64 `json:"turnout_percent"`
}

// Stats returns registration and turnout counts
func (s *VotingService) Stats(ctx context.Context) (*TurnoutStats, error) {
	registered, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	cast, err := s.ballotRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &TurnoutStats{
		RegisteredStudents: registered,
		BallotsCast:        cast,
	}
	if registered > 0 {
		stats.TurnoutPercent = float64(cast) / float64(registered) * 100
	}
	return stats, nil
}
