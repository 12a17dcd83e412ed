package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"helha-jobapp/internal/adapters/http/middleware"
	"helha-jobapp/internal/adapters/http/routes"
	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"
	"helha-jobapp/internal/config"
	"helha-jobapp/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title HELHa JobApp API
// @version 1.0
// @description Job placement platform for students and companies

// @contact.name API Support
// @contact.email support@jobapp.helha.be

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host jobapp.helha.be
// @BasePath /
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Seed default admin account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start the daily application digest (08:30 daily)
	mailer := services.NewMailer(cfg.SMTP)
	digestService := services.NewDigestService(repositories.NewApplicationRepository(db), mailer)
	if err := digestService.Start(); err != nil {
		log.Printf("⚠️ Warning: Failed to start digest scheduler: %v", err)
	}
	defer digestService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HELHa JobApp API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

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
