package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ballotRepository implements BallotRepository
type ballotRepository struct {
	db *gorm.DB
}

// NewBallotRepository creates a new ballot repository
func NewBallotRepository(db *gorm.DB) BallotRepository {
	return &ballotRepository{db: db}
}

// CreateWithFingerprint appends the ballot and records the fingerprint in
// one transaction. The fingerprint primary key makes the insert fail with
// gorm.ErrDuplicatedKey when the voter has already cast a ballot, so two
// racing requests can never both commit.
func (r *ballotRepository) CreateWithFingerprint(ctx context.Context, ballot *models.Ballot, fingerprint string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.VotedFingerprint{Fingerprint: fingerprint}).Error; err != nil {
			return err
		}
		return tx.Create(ballot).Error
	})
}

// HasVoted checks fingerprint membership in the voted set
func (r *ballotRepository) HasVoted(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VotedFingerprint{}).
		Where("fingerprint = ?", fingerprint).
		Count(&count).Error
	return count > 0, err
}

// ListAll returns all recorded ballots in cast order
func (r *ballotRepository) ListAll(ctx context.Context) ([]*models.Ballot, error) {
	var ballots []*models.Ballot
	err := r.db.WithContext(ctx).Order("cast_at ASC").Find(&ballots).Error
	return ballots, err
}

// Count returns the total ballot count
func (r *ballotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Ballot{}).Count(&count).Error
	return count, err
}

// ResetAll deletes all ballots and voted fingerprints in one transaction
func (r *ballotRepository) ResetAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Ballot{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.VotedFingerprint{}).Error
	})
}
