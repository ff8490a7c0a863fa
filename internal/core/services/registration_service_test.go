package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/config"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRegistrationConfig() *config.Config {
	return &config.Config{
		Admin:    config.AdminConfig{Password: "admin-secret"},
		Election: config.ElectionConfig{FingerprintSecret: "fp-secret", OpenRegistration: true},
	}
}

func rosterConfig() *config.Config {
	cfg := openRegistrationConfig()
	cfg.Election.OpenRegistration = false
	return cfg
}

func validRegisterInput(studentID string) *RegisterInput {
	return &RegisterInput{
		StudentID:       studentID,
		Password:        "correct horse battery",
		ConfirmPassword: "correct horse battery",
		Question:        "First pet's name?",
		Answer:          "Biscuit",
	}
}

func TestRegisterIssuesCredentials(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	svc := NewRegistrationService(studentRepo, newFakeEligibleRepo(nil), openRegistrationConfig())

	result, err := svc.Register(context.Background(), validRegisterInput("nm1001"))
	require.NoError(t, err)

	assert.Equal(t, "NM1001", result.StudentID, "student ID should be normalized")
	assert.Equal(t, "Student NM1001", result.DisplayName)
	assert.Regexp(t, `^ACCESS-[0-9A-F]{16}$`, result.AccessID)
	assert.Regexp(t, `^[0-9A-F]{20}$`, result.RecoveryCode)

	stored, err := studentRepo.GetByID(context.Background(), "NM1001")
	require.NoError(t, err)
	assert.True(t, stored.Registered())
	assert.Equal(t, result.AccessID, stored.AccessID)

	// Only derived material is persisted
	assert.NotContains(t, stored.PasswordHash, "correct horse battery")
	assert.True(t, credential.Verify("correct horse battery", stored.PasswordSalt, stored.PasswordHash))
	assert.True(t, credential.Verify("biscuit", stored.SecurityAnswerSalt, stored.SecurityAnswerHash),
		"answer should be matched case-insensitively")
	assert.True(t, credential.Verify(result.RecoveryCode, stored.RecoveryCodeSalt, stored.RecoveryCodeHash))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewRegistrationService(newFakeStudentRepo(), newFakeEligibleRepo(nil), openRegistrationConfig())

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing student ID", func(in *RegisterInput) { in.StudentID = "" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"missing question", func(in *RegisterInput) { in.Question = "" }},
		{"missing answer", func(in *RegisterInput) { in.Answer = "" }},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "different" }},
		{"whitespace-only student ID", func(in *RegisterInput) { in.StudentID = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput("NM1001")
			tt.mutate(input)

			_, err := svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc := NewRegistrationService(newFakeStudentRepo(), newFakeEligibleRepo(nil), openRegistrationConfig())

	_, err := svc.Register(context.Background(), validRegisterInput("NM1001"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterInput("NM1001"))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	// Same student in a different spelling is still the same student
	_, err = svc.Register(context.Background(), validRegisterInput("  nm1001  "))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegisterRosterCheck(t *testing.T) {
	roster := map[string]string{"NM2001": "Amara Osei", "NM2002": ""}
	svc := NewRegistrationService(newFakeStudentRepo(), newFakeEligibleRepo(roster), rosterConfig())

	result, err := svc.Register(context.Background(), validRegisterInput("NM2001"))
	require.NoError(t, err)
	assert.Equal(t, "Amara Osei", result.DisplayName, "roster name should win")

	result, err = svc.Register(context.Background(), validRegisterInput("NM2002"))
	require.NoError(t, err)
	assert.Equal(t, "Student NM2002", result.DisplayName, "placeholder when roster has no name")

	_, err = svc.Register(context.Background(), validRegisterInput("NM9999"))
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestRegisterConcurrentSameStudent(t *testing.T) {
	const attempts = 16

	studentRepo := newFakeStudentRepo()
	svc := NewRegistrationService(studentRepo, newFakeEligibleRepo(nil), openRegistrationConfig())

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Register(context.Background(), validRegisterInput("NM3001"))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		}
	}
	assert.Equal(t, 1, successes, "exactly one registration should win")
}

func TestRegisterDistinctCredentialsPerStudent(t *testing.T) {
	svc := NewRegistrationService(newFakeStudentRepo(), newFakeEligibleRepo(nil), openRegistrationConfig())

	seen := map[string]bool{}
	for _, id := range []string{"NM4001", "NM4002", "NM4003"} {
		result, err := svc.Register(context.Background(), validRegisterInput(id))
		require.NoError(t, err)
		assert.False(t, seen[result.AccessID], "access IDs must not repeat")
		assert.False(t, seen[result.RecoveryCode], "recovery codes must not repeat")
		seen[result.AccessID] = true
		seen[result.RecoveryCode] = true
	}
}

func TestNormalizeStudentID(t *testing.T) {
	assert.Equal(t, "NM1001", normalizeStudentID("  nm1001 "))
	assert.Equal(t, "", normalizeStudentID("   "))
	assert.Equal(t, strings.ToUpper("abc123"), normalizeStudentID("abc123"))
}
