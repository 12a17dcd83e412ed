package routes

import (
	"helha-jobapp/internal/adapters/http/handlers"
	"helha-jobapp/internal/adapters/http/middleware"
	"helha-jobapp/internal/adapters/persistence/repositories"
	"helha-jobapp/internal/config"
	"helha-jobapp/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	mailer := services.NewMailer(cfg.SMTP)
	authService := services.NewAuthService(userRepo, mailer, cfg)
	userService := services.NewUserService(userRepo)
	offerService := services.NewOfferService(offerRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, offerRepo, userRepo, mailer)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	offerHandler := handlers.NewOfferHandler(offerService)
	studentOfferHandler := handlers.NewStudentOfferHandler(offerService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public, rate limited)
	authRoutes := app.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler)

	// Admin routes (Admin only)
	adminRoutes := app.Group("/admin/users")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, userHandler)

	// Company routes (Company only)
	companyRoutes := app.Group("/company/offers")
	companyRoutes.Use(middleware.AuthMiddleware(cfg))
	companyRoutes.Use(middleware.CompanyOnly())
	setupCompanyRoutes(companyRoutes, offerHandler)

	// Student offer routes (Student only)
	offerRoutes := app.Group("/offers")
	offerRoutes.Use(middleware.AuthMiddleware(cfg))
	offerRoutes.Use(middleware.StudentOnly())
	setupStudentOfferRoutes(offerRoutes, studentOfferHandler)

	// Application history routes (Authenticated users)
	applicationRoutes := app.Group("/applications")
	applicationRoutes.Use(middleware.AuthMiddleware(cfg))
	setupApplicationRoutes(applicationRoutes, applicationHandler)
}

// setupAuthRoutes configures authentication routes.
// Everything under /auth is public so the SPA can reach these
// endpoints without a bearer token.
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/forgot-password", middleware.StrictRateLimiter(), handler.ForgotPassword)
	router.Get("/session", handler.Session)
	router.Put("/change-password", handler.ChangePassword)
}

// setupAdminRoutes configures admin user management routes
func setupAdminRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupCompanyRoutes configures company offer management routes
func setupCompanyRoutes(router fiber.Router, handler *handlers.OfferHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupStudentOfferRoutes configures the student-facing offer routes
func setupStudentOfferRoutes(router fiber.Router, handler *handlers.StudentOfferHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/:id/apply", handler.Apply)
}

// setupApplicationRoutes configures application history routes
func setupApplicationRoutes(router fiber.Router, handler *handlers.ApplicationHandler) {
	router.Get("/student/:id", handler.ListByStudent)
}
