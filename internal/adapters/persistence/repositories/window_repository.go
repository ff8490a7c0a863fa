package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// votingWindowRepository implements VotingWindowRepository
type votingWindowRepository struct {
	db *gorm.DB
}

// NewVotingWindowRepository creates a new voting window repository
func NewVotingWindowRepository(db *gorm.DB) VotingWindowRepository {
	return &votingWindowRepository{db: db}
}

// Get reads the single persisted window row
func (r *votingWindowRepository) Get(ctx context.Context) (*models.VotingWindow, error) {
	var window models.VotingWindow
	err := r.db.WithContext(ctx).Where("id = ?", models.WindowRowID).First(&window).Error
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// Save upserts the single window row
func (r *votingWindowRepository) Save(ctx context.Context, window *models.VotingWindow) error {
	window.ID = models.WindowRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"starts_at", "ends_at", "updated_at"}),
		}).
		Create(window).Error
}
