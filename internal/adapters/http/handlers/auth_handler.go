package handlers

import (
	"errors"
	"log"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// genericLoginFailure is returned for both unknown credentials and wrong
// passwords so the response does not reveal which factor failed.
const genericLoginFailure = "Invalid Access ID or password"

// AuthHandler handles student registration and authentication endpoints
type AuthHandler struct {
	registrationService *services.RegistrationService
	authService         *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(registrationService *services.RegistrationService, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		registrationService: registrationService,
		authService:         authService,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	StudentID       string `json:"studentId"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	AccessID string `json:"accessId"`
	Password string `json:"password"`
}

// ForgotQuestionRequest represents a security-question lookup
type ForgotQuestionRequest struct {
	StudentID string `json:"studentId"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	StudentID          string `json:"studentId"`
	Answer             string `json:"answer"`
	RecoveryCode       string `json:"recoveryCode"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// Register handles student registration
// @Summary Register student
// @Description Issues a one-time-displayed Access ID and recovery code
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]interface{}
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	if req.StudentID == "" || req.Password == "" || req.Question == "" || req.Answer == "" {
		return response.Fail(c, "All fields required and passwords must match")
	}
	if req.Password != req.ConfirmPassword {
		return response.Fail(c, "All fields required and passwords must match")
	}

	input := &services.RegisterInput{
		StudentID:       req.StudentID,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Question:        req.Question,
		Answer:          req.Answer,
	}

	result, err := h.registrationService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.Fail(c, "All fields required and passwords must match")
		case errors.Is(err, domain.ErrNotEligible):
			return response.Fail(c, "Student ID is not on the eligibility list")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return response.Fail(c, "Student ID already registered")
		default:
			log.Printf("❌ Registration failed: %v", err)
			return response.InternalServerError(c, "Failed to register")
		}
	}

	return response.OKMessage(c, "Registration successful! Save your Access ID and Recovery Code.", fiber.Map{
		"accessId":     result.AccessID,
		"recoveryCode": result.RecoveryCode,
	})
}

// Login handles student login
// @Summary Login student
// @Description Verifies Access ID and password; returns an identity assertion, no session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	if req.AccessID == "" || req.Password == "" {
		return response.Fail(c, "Access ID and password required")
	}

	identity, err := h.authService.Login(c.Context(), &services.LoginInput{
		AccessID: req.AccessID,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredential), errors.Is(err, domain.ErrIncorrectPassword):
			return response.Fail(c, genericLoginFailure)
		case errors.Is(err, domain.ErrValidation):
			return response.Fail(c, "Access ID and password required")
		default:
			log.Printf("❌ Login failed: %v", err)
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.OK(c, fiber.Map{
		"student": identity,
	})
}

// ForgotQuestion returns the stored security question
// @Summary Security question lookup
// @Description Returns the security question for a student ID
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ForgotQuestionRequest true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Router /forgot-question [post]
func (h *AuthHandler) ForgotQuestion(c *fiber.Ctx) error {
	var req ForgotQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	question, err := h.authService.SecurityQuestion(c.Context(), req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.Fail(c, "Student ID required")
		case errors.Is(err, domain.ErrRecordNotFound):
			return response.Fail(c, "Student ID not found")
		default:
			log.Printf("❌ Security question lookup failed: %v", err)
			return response.InternalServerError(c, "Failed to look up security question")
		}
	}

	return response.OK(c, fiber.Map{
		"question": question,
	})
}

// ResetPassword handles password reset via security answer or recovery code
// @Summary Reset password
// @Description Verifies the security answer or recovery code and replaces the password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Reset data"
// @Success 200 {object} map[string]interface{}
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	err := h.authService.ResetPassword(c.Context(), &services.ResetInput{
		StudentID:       req.StudentID,
		Answer:          req.Answer,
		RecoveryCode:    req.RecoveryCode,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.Fail(c, "Student ID, one recovery secret and matching new passwords required")
		case errors.Is(err, domain.ErrRecordNotFound):
			return response.Fail(c, "Student ID not found")
		case errors.Is(err, domain.ErrInvalidSecret):
			return response.Fail(c, "Security answer or recovery code does not match")
		default:
			log.Printf("❌ Password reset failed: %v", err)
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.OKMessage(c, "Password reset successful", nil)
}
