package routes

import (
	"context"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/http/handlers"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/http/middleware"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/config"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto the app. This is
// the composition root; nothing below holds package-level state, so
// tests can assemble the same graph against fakes.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) error {
	// Repositories
	studentRepo := repositories.NewStudentRepository(db)
	eligibleRepo := repositories.NewEligibleStudentRepository(db)
	ballotRepo := repositories.NewBallotRepository(db)
	windowRepo := repositories.NewVotingWindowRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)

	// Services
	windowService := services.NewWindowService(windowRepo)
	if err := windowService.Load(context.Background()); err != nil {
		return err
	}

	registrationService := services.NewRegistrationService(studentRepo, eligibleRepo, cfg)
	authService := services.NewAuthService(studentRepo)
	votingService := services.NewVotingService(ballotRepo, studentRepo, candidateRepo, windowService, cfg.Election.FingerprintSecret)
	adminService := services.NewAdminService(cfg)
	voterService := services.NewVoterService(studentRepo)
	exportService := services.NewExportService(ballotRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(registrationService, authService)
	voteHandler := handlers.NewVoteHandler(votingService, windowService)
	adminHandler := handlers.NewAdminHandler(adminService, windowService, votingService, voterService, exportService)

	// Health & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Student routes (public)
	api.Post("/register", middleware.StrictRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Post("/forgot-question", middleware.AuthRateLimiter(), authHandler.ForgotQuestion)
	api.Post("/reset-password", middleware.StrictRateLimiter(), authHandler.ResetPassword)

	// Voting routes (public; identity travels in the body by design)
	api.Post("/vote", voteHandler.Cast)
	api.Get("/results", voteHandler.Results)
	api.Get("/voting-status", voteHandler.VotingStatus)

	// Admin routes
	api.Post("/admin/login", middleware.StrictRateLimiter(), adminHandler.Login)

	adminGate := middleware.AdminAuth(adminService)
	api.Post("/admin/set-period", adminGate, adminHandler.SetPeriod)
	api.Post("/open-voting", adminGate, adminHandler.OpenVoting)
	api.Post("/close-voting", adminGate, adminHandler.CloseVoting)
	api.Post("/reset", adminGate, adminHandler.Reset)
	api.Get("/export-votes", adminGate, adminHandler.ExportVotes)
	api.Get("/admin/voters", adminGate, adminHandler.Voters)
	api.Get("/admin/dashboard", adminGate, adminHandler.Dashboard)

	return nil
}
