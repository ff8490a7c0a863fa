package repositories

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// studentRepository implements StudentRepository
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create inserts a new student record
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByID gets a student by normalized student ID
func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByAccessID gets a student by access credential
func (r *studentRepository) GetByAccessID(ctx context.Context, accessID string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("access_id = ?", accessID).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByID checks if a student record exists
func (r *studentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdatePassword replaces the password hash and salt only; all other
// credential fields are left untouched.
func (r *studentRepository) UpdatePassword(ctx context.Context, id, hash, salt string) error {
	return r.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"password_salt": salt,
		}).Error
}

// List lists registered students with pagination
func (r *studentRepository) List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Count returns the number of registered students
func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}
