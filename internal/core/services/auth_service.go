package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/credential"

	"gorm.io/gorm"
)

// AuthService verifies student credentials. Login returns an identity
// assertion only; no session is minted, and every later call re-submits
// identity from raw input. That trust model is part of the API contract.
type AuthService struct {
	studentRepo repositories.StudentRepository
}

// NewAuthService creates a new auth service
func NewAuthService(studentRepo repositories.StudentRepository) *AuthService {
	return &AuthService{studentRepo: studentRepo}
}

// LoginInput represents login input
type LoginInput struct {
	AccessID string
	Password string
}

// Identity is the session-free identity assertion returned on login
type Identity struct {
	StudentID   string `json:"id"`
	DisplayName string `json:"name"`
}

// Login verifies an access credential and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*Identity, error) {
	if input.AccessID == "" || input.Password == "" {
		return nil, domain.ErrValidation
	}

	accessID := strings.ToUpper(strings.TrimSpace(input.AccessID))

	student, err := s.studentRepo.GetByAccessID(ctx, accessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}
	if !student.Registered() {
		return nil, domain.ErrInvalidCredential
	}

	if !credential.Verify(input.Password, student.PasswordSalt, student.PasswordHash) {
		return nil, domain.ErrIncorrectPassword
	}

	log.Printf("✅ Student logged in: %s", student.ID)

	return &Identity{
		StudentID:   student.ID,
		DisplayName: student.DisplayName,
	}, nil
}

// SecurityQuestion returns the stored security question for a student
func (s *AuthService) SecurityQuestion(ctx context.Context, studentID string) (string, error) {
	if strings.TrimSpace(studentID) == "" {
		return "", domain.ErrValidation
	}

	student, err := s.studentRepo.GetByID(ctx, normalizeStudentID(studentID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecordNotFound
		}
		return "", err
	}
	if !student.Registered() {
		return "", domain.ErrRecordNotFound
	}

	return student.SecurityQuestion, nil
}

// ResetInput represents a password reset request. Exactly one of Answer
// or RecoveryCode must be supplied.
type ResetInput struct {
	StudentID       string
	Answer          string
	RecoveryCode    string
	NewPassword     string
	ConfirmPassword string
}

// ResetPassword verifies the recovery secret and replaces the password
// hash and salt only. The security answer and recovery code stay valid;
// the recovery code is deliberately not single-use.
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetInput) error {
	if input.StudentID == "" || input.NewPassword == "" {
		return domain.ErrValidation
	}
	if input.NewPassword != input.ConfirmPassword {
		return domain.ErrValidation
	}
	if (input.Answer == "") == (input.RecoveryCode == "") {
		return domain.ErrValidation
	}

	studentID := normalizeStudentID(input.StudentID)

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecordNotFound
		}
		return err
	}
	if !student.Registered() {
		return domain.ErrRecordNotFound
	}

	if input.Answer != "" {
		answer := strings.ToLower(strings.TrimSpace(input.Answer))
		if !credential.Verify(answer, student.SecurityAnswerSalt, student.SecurityAnswerHash) {
			return domain.ErrInvalidSecret
		}
	} else {
		code := strings.ToUpper(strings.TrimSpace(input.RecoveryCode))
		if !credential.Verify(code, student.RecoveryCodeSalt, student.RecoveryCodeHash) {
			return domain.ErrInvalidSecret
		}
	}

	salt, hash, err := credential.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.studentRepo.UpdatePassword(ctx, studentID, hash, salt); err != nil {
		return err
	}

	log.Printf("✅ Password reset for student: %s", studentID)
	return nil
}
