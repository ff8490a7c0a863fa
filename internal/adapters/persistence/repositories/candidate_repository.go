package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// candidateRepository implements CandidateRepository
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// ListAll returns all seeded candidates
func (r *candidateRepository) ListAll(ctx context.Context) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	err := r.db.WithContext(ctx).Order("office ASC, id ASC").Find(&candidates).Error
	return candidates, err
}
