package routes

import (
	"campushub/internal/adapters/http/handlers"
	"campushub/internal/adapters/http/middleware"
	"campushub/internal/adapters/persistence/repositories"
	"campushub/internal/config"
	"campushub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	odRepo := repositories.NewOdRepository(db)
	clubRepo := repositories.NewClubRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, eventRepo)
	odService := services.NewOdService(odRepo)
	clubService := services.NewClubService(clubRepo)
	dashboardService := services.NewDashboardService(eventRepo, attendanceRepo, odRepo, clubRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	scanHandler := handlers.NewScanHandler(attendanceService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	odHandler := handlers.NewOdHandler(odService)
	clubHandler := handlers.NewClubHandler(clubService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public + protected)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Scan route (authenticated; rate limited against scan spam)
	apiV1.Post("/scan",
		middleware.AuthMiddleware(cfg),
		middleware.ScanRateLimiter(),
		scanHandler.Scan,
	)

	// Event routes
	eventRoutes := apiV1.Group("/events")
	setupEventRoutes(eventRoutes, eventHandler, attendanceHandler, cfg)

	// Attendance history
	attendanceRoutes := apiV1.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthMiddleware(cfg))
	attendanceRoutes.Get("/my", attendanceHandler.GetMyAttendance)

	// Club routes
	clubRoutes := apiV1.Group("/clubs")
	setupClubRoutes(clubRoutes, clubHandler, cfg)

	// OD routes
	odRoutes := apiV1.Group("/od")
	odRoutes.Use(middleware.AuthMiddleware(cfg))
	setupOdRoutes(odRoutes, odHandler)

	// Dashboard
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)

	// Profile routes (authenticated users)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", userHandler.GetProfile)
	profileRoutes.Put("/", userHandler.UpdateProfile)
	profileRoutes.Put("/password", middleware.StrictRateLimiter(), userHandler.ChangePassword)

	// User management routes (admin only)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	userRoutes.Get("/", userHandler.ListUsers)
	userRoutes.Get("/:id", userHandler.GetUser)
	userRoutes.Put("/:id", userHandler.UpdateUser)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupEventRoutes configures event catalog, registration and QR routes
func setupEventRoutes(router fiber.Router, handler *handlers.EventHandler, attendanceHandler *handlers.AttendanceHandler, cfg *config.Config) {
	// Public catalog
	router.Get("/", handler.List)

	// Authenticated routes
	router.Use(middleware.AuthMiddleware(cfg))

	router.Get("/mine", middleware.OrganizerOrAdmin(), handler.ListMine)
	router.Get("/registrations/my", handler.ListMyRegistrations)
	router.Get("/bookmarks/my", handler.ListMyBookmarks)

	router.Post("/", middleware.OrganizerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.OrganizerOrAdmin(), handler.Update)

	// Registration & bookmarks
	router.Post("/:id/register", handler.Register)
	router.Delete("/:id/register", handler.CancelRegistration)
	router.Post("/:id/bookmark", handler.Bookmark)
	router.Delete("/:id/bookmark", handler.Unbookmark)

	// QR issuance (organizer/admin; payloads rotate, never cache)
	qrRoutes := router.Group("", middleware.OrganizerOrAdmin(), middleware.NoCacheHeaders())
	qrRoutes.Get("/:id/qr", handler.IssueQr)
	qrRoutes.Get("/:id/qr.png", handler.QrImage)

	// Roster (organizer/admin)
	router.Get("/:id/attendance", middleware.OrganizerOrAdmin(), attendanceHandler.GetEventAttendance)
}

// setupClubRoutes configures club directory routes
func setupClubRoutes(router fiber.Router, handler *handlers.ClubHandler, cfg *config.Config) {
	// Public directory (near-static, cacheable)
	router.Get("/", middleware.DirectoryCache(), handler.List)

	// Authenticated routes
	router.Get("/my", middleware.AuthMiddleware(cfg), handler.GetMyClubs)
	router.Get("/:id", handler.Get)
	router.Post("/:id/join", middleware.AuthMiddleware(cfg), handler.Join)
	router.Delete("/:id/leave", middleware.AuthMiddleware(cfg), handler.Leave)
}

// setupOdRoutes configures On-Duty workflow routes
func setupOdRoutes(router fiber.Router, handler *handlers.OdHandler) {
	router.Get("/my", handler.GetMyRequests)

	// Faculty review
	facultyRoutes := router.Group("", middleware.FacultyOrAdmin())
	facultyRoutes.Get("/pending", handler.GetPending)
	facultyRoutes.Put("/:id/approve", handler.Approve)
	facultyRoutes.Put("/:id/reject", handler.Reject)
}
