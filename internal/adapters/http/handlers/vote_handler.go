package handlers

import (
	"errors"
	"log"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/domain"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VoteHandler handles ballot casting and the public read endpoints
type VoteHandler struct {
	votingService *services.VotingService
	windowService *services.WindowService
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votingService *services.VotingService, windowService *services.WindowService) *VoteHandler {
	return &VoteHandler{
		votingService: votingService,
		windowService: windowService,
	}
}

// VoteRequest represents a ballot submission body
type VoteRequest struct {
	StudentID     string `json:"studentId"`
	President     string `json:"president"`
	VicePresident string `json:"vicepresident"`
	Secretary     string `json:"secretary"`
}

// Cast handles ballot submission
// @Summary Cast vote
// @Description Records at most one ballot per student within the voting window
// @Tags Voting
// @Accept json
// @Produce json
// @Param body body VoteRequest true "Ballot selections"
// @Success 200 {object} map[string]interface{}
// @Router /vote [post]
func (h *VoteHandler) Cast(c *fiber.Ctx) error {
	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, "Invalid request body")
	}

	refCode, err := h.votingService.Cast(c.Context(), &services.CastInput{
		StudentID:     req.StudentID,
		President:     req.President,
		VicePresident: req.VicePresident,
		Secretary:     req.Secretary,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.Fail(c, "Student ID and all three selections required")
		case errors.Is(err, domain.ErrVotingClosed):
			return response.Fail(c, "Voting period is not open!")
		case errors.Is(err, domain.ErrAlreadyVoted):
			return response.Fail(c, "You have already voted!")
		default:
			log.Printf("❌ Ballot cast failed: %v", err)
			return response.InternalServerError(c, "Failed to record ballot")
		}
	}

	return response.OK(c, fiber.Map{
		"refCode": refCode,
	})
}

// Results handles the public results projection
// @Summary Election results
// @Description Aggregate counts per candidate per office plus total ballots
// @Tags Voting
// @Produce json
// @Success 200 {object} services.ElectionResults
// @Router /results [get]
func (h *VoteHandler) Results(c *fiber.Ctx) error {
	results, err := h.votingService.Results(c.Context())
	if err != nil {
		log.Printf("❌ Results projection failed: %v", err)
		return response.InternalServerError(c, "Failed to load results")
	}

	return c.JSON(results)
}

// VotingStatus handles the public window status read
// @Summary Voting status
// @Description Returns whether the window is open plus its bounds (epoch millis)
// @Tags Voting
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /voting-status [get]
func (h *VoteHandler) VotingStatus(c *fiber.Ctx) error {
	open, start, end := h.windowService.Status()

	return c.JSON(fiber.Map{
		"isOpen": open,
		"start":  start.UnixMilli(),
		"end":    end.UnixMilli(),
	})
}
