package services

import (
	"crypto/subtle"
	"log"
	"sync"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/config"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/credential"

	"golang.org/x/crypto/bcrypt"
)

// AdminService is the admin session gate: a single shared bearer token,
// minted on password match. Re-authenticating replaces the previous
// token, so at most one admin session is valid at any instant. The token
// is never persisted and dies with the process.
type AdminService struct {
	password     string
	passwordHash string

	mu    sync.RWMutex
	token string
}

// NewAdminService creates a new admin session gate
func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{
		password:     cfg.Admin.Password,
		passwordHash: cfg.Admin.PasswordHash,
	}
}

// Login checks the admin password and mints a fresh bearer token,
// invalidating the previous one by replacement.
func (s *AdminService) Login(password string) (string, error) {
	if !s.passwordMatches(password) {
		return "", domain.ErrIncorrectPassword
	}

	token, err := credential.NewBearerToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	log.Println("✅ Admin session opened")
	return token, nil
}

// Verify reports whether the presented token is the current one. The
// compare is constant time.
func (s *AdminService) Verify(token string) bool {
	s.mu.RLock()
	current := s.token
	s.mu.RUnlock()

	if current == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(current)) == 1
}

// passwordMatches prefers the bcrypt hash when configured, falling back
// to a constant-time compare against the plaintext env secret.
func (s *AdminService) passwordMatches(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}
