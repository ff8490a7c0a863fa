package services

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
)

// VoterService exposes the registered-voter roll to the admin surface.
// Read-only; credential material never crosses this boundary.
type VoterService struct {
	studentRepo repositories.StudentRepository
}

// NewVoterService creates a new voter service
func NewVoterService(studentRepo repositories.StudentRepository) *VoterService {
	return &VoterService{studentRepo: studentRepo}
}

// List returns a page of registered students
func (s *VoterService) List(ctx context.Context, offset, limit int) ([]*models.StudentResponse, int64, error) {
	students, total, err := s.studentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, student.ToResponse())
	}
	return responses, total, nil
}
