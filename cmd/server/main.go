package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/http/middleware"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/http/routes"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/config"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/Jeffstark223/nursa-ehub-2026/docs" // Swagger docs
)

// @title Nursa eHub Election API
// @version 1.0
// @description Student council election backend: one-time voting credentials, at-most-one ballot per voter, admin-controlled voting window.

// @contact.name Election Committee
// @contact.email elections@nursa.edu

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed candidates, default window and (optionally) the roster
	if err := config.SeedElectionData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed election data: %v", err)
	}

	// Daily turnout report
	cronService := services.NewCronService(db)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Nursa eHub Election API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	if err := routes.Setup(app, db, cfg); err != nil {
		log.Fatalf("❌ Failed to set up routes: %v", err)
	}

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
