package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
)

// StudentRepository defines student record data access
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByAccessID(ctx context.Context, accessID string) (*models.Student, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	UpdatePassword(ctx context.Context, id, hash, salt string) error
	List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error)
	Count(ctx context.Context) (int64, error)
}

// EligibleStudentRepository defines read access to the enrollment roster
type EligibleStudentRepository interface {
	GetByID(ctx context.Context, id string) (*models.EligibleStudent, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BallotRepository defines ballot ledger data access
type BallotRepository interface {
	// CreateWithFingerprint appends the ballot and marks the fingerprint
	// as used in a single transaction. A duplicate fingerprint surfaces
	// as gorm.ErrDuplicatedKey.
	CreateWithFingerprint(ctx context.Context, ballot *models.Ballot, fingerprint string) error
	HasVoted(ctx context.Context, fingerprint string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Ballot, error)
	Count(ctx context.Context) (int64, error)
	ResetAll(ctx context.Context) error
}

// VotingWindowRepository defines voting window persistence
type VotingWindowRepository interface {
	Get(ctx context.Context) (*models.VotingWindow, error)
	Save(ctx context.Context, window *models.VotingWindow) error
}

// CandidateRepository defines read access to the candidate roster
type CandidateRepository interface {
	ListAll(ctx context.Context) ([]*models.Candidate, error)
}
