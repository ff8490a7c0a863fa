package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/pagination"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// periodLayouts are the accepted timestamp formats for set-period, most
// specific first.
var periodLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AdminHandler handles the privileged election management endpoints
type AdminHandler struct {
	adminService  *services.AdminService
	windowService *services.WindowService
	votingService *services.VotingService
	voterService  *services.VoterService
	exportService *services.ExportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminService *services.AdminService,
	windowService *services.WindowService,
	votingService *services.VotingService,
	voterService *services.VoterService,
	exportService *services.ExportService,
) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		windowService: windowService,
		votingService: votingService,
		voterService:  voterService,
		exportService: exportService,
	}
}

// AdminLoginRequest represents admin login body
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// SetPeriodRequest represents a voting period update
type SetPeriodRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Login handles admin login
// @Summary Admin login
// @Description Mints a bearer token, replacing any previously valid one
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Admin password"
// @Success 200 {object} map[string]interface{}
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	token, err := h.adminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectPassword) {
			return response.Fail(c, "Incorrect password")
		}
		log.Printf("❌ Admin login failed: %v", err)
		return response.InternalServerError(c, "Failed to login")
	}

	return response.OK(c, fiber.Map{
		"token": token,
	})
}

// SetPeriod handles voting period updates
// @Summary Set voting period
// @Description Replaces the voting window bounds
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetPeriodRequest true "Window bounds"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/set-period [post]
func (h *AdminHandler) SetPeriod(c *fiber.Ctx) error {
	var req SetPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Start == "" || req.End == "" {
		return response.BadRequest(c, "Missing dates")
	}

	start, err := parsePeriodTime(req.Start)
	if err != nil {
		return response.BadRequest(c, "Invalid start date")
	}
	end, err := parsePeriodTime(req.End)
	if err != nil {
		return response.BadRequest(c, "Invalid end date")
	}

	if err := h.windowService.SetPeriod(c.Context(), start, end); err != nil {
		log.Printf("❌ Set period failed: %v", err)
		return response.InternalServerError(c, "Failed to update voting period")
	}

	return response.OK(c, nil)
}

// OpenVoting opens the window immediately
// @Summary Open voting now
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /open-voting [post]
func (h *AdminHandler) OpenVoting(c *fiber.Ctx) error {
	if err := h.windowService.OpenNow(c.Context()); err != nil {
		log.Printf("❌ Open voting failed: %v", err)
		return response.InternalServerError(c, "Failed to open voting")
	}
	return response.OK(c, nil)
}

// CloseVoting closes the window immediately
// @Summary Close voting now
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /close-voting [post]
func (h *AdminHandler) CloseVoting(c *fiber.Ctx) error {
	if err := h.windowService.CloseNow(c.Context()); err != nil {
		log.Printf("❌ Close voting failed: %v", err)
		return response.InternalServerError(c, "Failed to close voting")
	}
	return response.OK(c, nil)
}

// Reset wipes all ballots and voted fingerprints
// @Summary Reset election
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if err := h.votingService.Reset(c.Context()); err != nil {
		log.Printf("❌ Election reset failed: %v", err)
		return response.InternalServerError(c, "Failed to reset election")
	}
	return response.OK(c, nil)
}

// ExportVotes streams the ballot ledger as CSV
// @Summary Export votes
// @Description CSV export of all recorded ballots
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Failure 401 {object} map[string]interface{}
// @Router /export-votes [get]
func (h *AdminHandler) ExportVotes(c *fiber.Ctx) error {
	filename, body, total, err := h.exportService.Export(c.Context())
	if err != nil {
		log.Printf("❌ Vote export failed: %v", err)
		return response.InternalServerError(c, "Failed to export votes")
	}

	if total == 0 {
		return c.SendString(string(body))
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// Voters lists registered students
// @Summary List registered voters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/voters [get]
func (h *AdminHandler) Voters(c *fiber.Ctx) error {
	params := pagination.FromRequest(c)

	voters, total, err := h.voterService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		log.Printf("❌ Voter listing failed: %v", err)
		return response.InternalServerError(c, "Failed to list voters")
	}

	return response.OK(c, fiber.Map{
		"voters": voters,
		"meta":   pagination.MetaFor(params, total),
	})
}

// Dashboard returns turnout stats and window state
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.votingService.Stats(c.Context())
	if err != nil {
		log.Printf("❌ Dashboard stats failed: %v", err)
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	open, start, end := h.windowService.Status()

	return response.OK(c, fiber.Map{
		"stats": stats,
		"voting": fiber.Map{
			"isOpen": open,
			"start":  start.UnixMilli(),
			"end":    end.UnixMilli(),
		},
	})
}

// parsePeriodTime parses an admin-supplied timestamp in any accepted layout
func parsePeriodTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range periodLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
