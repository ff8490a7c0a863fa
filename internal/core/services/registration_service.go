package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/config"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/credential"

	"gorm.io/gorm"
)

// normalizeStudentID is the canonical form used for lookups, the
// fingerprint and the stored record: trimmed and upper-cased.
func normalizeStudentID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// RegistrationService issues one-time voting credentials
type RegistrationService struct {
	studentRepo  repositories.StudentRepository
	eligibleRepo repositories.EligibleStudentRepository
	cfg          *config.Config

	// mu serializes the exists-check against the insert so two
	// concurrent registrations cannot mint two credential sets for one
	// student ID. The primary key on students is the storage backstop.
	mu sync.Mutex
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	studentRepo repositories.StudentRepository,
	eligibleRepo repositories.EligibleStudentRepository,
	cfg *config.Config,
) *RegistrationService {
	return &RegistrationService{
		studentRepo:  studentRepo,
		eligibleRepo: eligibleRepo,
		cfg:          cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	StudentID       string
	Password        string
	ConfirmPassword string
	Question        string
	Answer          string
}

// RegisterResult carries the plaintext credentials returned exactly once.
// Neither value is ever stored or retrievable again.
type RegisterResult struct {
	StudentID    string
	DisplayName  string
	AccessID     string
	RecoveryCode string
}

// Register issues an access credential and recovery code and persists the
// fully-registered student record.
func (s *RegistrationService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	if input.StudentID == "" || input.Password == "" || input.Question == "" || input.Answer == "" {
		return nil, domain.ErrValidation
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrValidation
	}

	studentID := normalizeStudentID(input.StudentID)
	if studentID == "" {
		return nil, domain.ErrValidation
	}

	displayName := "Student " + studentID

	// Consult the roster unless the deployment allows open registration.
	if !s.cfg.Election.OpenRegistration {
		entry, err := s.eligibleRepo.GetByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNotEligible
			}
			return nil, err
		}
		if entry.FullName != "" {
			displayName = entry.FullName
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	accessID, err := credential.NewAccessID()
	if err != nil {
		return nil, err
	}
	recoveryCode, err := credential.NewRecoveryCode()
	if err != nil {
		return nil, err
	}

	passwordSalt, passwordHash, err := credential.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	answerSalt, answerHash, err := credential.Hash(strings.ToLower(strings.TrimSpace(input.Answer)))
	if err != nil {
		return nil, err
	}
	recoverySalt, recoveryHash, err := credential.Hash(recoveryCode)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:                 studentID,
		DisplayName:        displayName,
		AccessID:           accessID,
		PasswordHash:       passwordHash,
		PasswordSalt:       passwordSalt,
		SecurityQuestion:   strings.TrimSpace(input.Question),
		SecurityAnswerHash: answerHash,
		SecurityAnswerSalt: answerSalt,
		RecoveryCodeHash:   recoveryHash,
		RecoveryCodeSalt:   recoverySalt,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	log.Printf("✅ Student registered: %s", studentID)

	return &RegisterResult{
		StudentID:    studentID,
		DisplayName:  displayName,
		AccessID:     accessID,
		RecoveryCode: recoveryCode,
	}, nil
}
