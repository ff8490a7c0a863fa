package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// eligibleStudentRepository implements EligibleStudentRepository over the
// read-only enrollment roster.
type eligibleStudentRepository struct {
	db *gorm.DB
}

// NewEligibleStudentRepository creates a new roster repository
func NewEligibleStudentRepository(db *gorm.DB) EligibleStudentRepository {
	return &eligibleStudentRepository{db: db}
}

// GetByID gets a roster entry by student ID
func (r *eligibleStudentRepository) GetByID(ctx context.Context, id string) (*models.EligibleStudent, error) {
	var entry models.EligibleStudent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExistsByID checks roster membership
func (r *eligibleStudentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EligibleStudent{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count returns the roster size
func (r *eligibleStudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EligibleStudent{}).Count(&count).Error
	return count, err
}
