package main

import (
	"os"
	"os/signal"
	"syscall"

	"find-your-doctor/internal/config"
	"find-your-doctor/internal/database"
	"find-your-doctor/internal/handler"
	"find-your-doctor/internal/logger"
	"find-your-doctor/internal/middleware"
	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	log := logger.New(cfg.Server.GinMode)
	log.Info().Msg("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg, log)

	if cfg.Policy.SeedOnStart {
		if err := database.Seed(db, log); err != nil {
			log.Error().Err(err).Msg("Failed to seed database")
		}
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	geoRepo := repository.NewGeoRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	hospitalUserRepo := repository.NewHospitalUserRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	contactRepo := repository.NewContactReportRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, cfg.Policy.AllowAdminSignup, log)
	userService := service.NewUserService(userRepo, log)
	geoService := service.NewGeoService(geoRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, hospitalUserRepo, geoRepo, cfg.Policy.HospitalDedupAllCreates, log)
	affiliationService := service.NewAffiliationService(hospitalUserRepo, hospitalRepo, log)
	doctorService := service.NewDoctorService(doctorRepo, log)
	contactService := service.NewContactService(contactRepo, log)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	geoHandler := handler.NewGeoHandler(geoService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, affiliationService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	contactHandler := handler.NewContactHandler(contactService)

	guard := middleware.NewAccessGuard(userRepo)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "find-your-doctor",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Contact form is public; the report list is admin-only
	r.POST("/contact", contactHandler.SubmitReport)
	r.GET("/contact/reports", middleware.AuthMiddleware(), guard.RequireAdmin(), contactHandler.ListReports)

	// Doctor directory (public browse, accepted members manage)
	doctors := r.Group("/doctors")
	{
		doctors.GET("", doctorHandler.ListDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)

		doctors.POST("/create", middleware.AuthMiddleware(), guard.RequireAccepted(), doctorHandler.CreateDoctor)
		doctors.POST("/:id/edit", middleware.AuthMiddleware(), guard.RequireAccepted(), doctorHandler.UpdateDoctor)
	}

	// Hospital directory and affiliation workflow
	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.ListHospitals)

		// Cascading geo lookups backing the filter dropdowns
		hospitals.GET("/api/countries", geoHandler.ListCountries)
		hospitals.GET("/api/cities", geoHandler.ListCities)
		hospitals.GET("/api/areas", geoHandler.ListAreas)

		authed := hospitals.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/create", guard.RequireAccepted(), hospitalHandler.CreateHospital)
			authed.POST("/:id/edit", guard.RequireAccepted(), hospitalHandler.UpdateHospital)

			// Affiliation requests
			authed.POST("/:id/request", guard.RequireStatus(models.UserStatusAccept), hospitalHandler.RequestAffiliation)
			authed.GET("/requests", guard.RequireAdmin(), hospitalHandler.ListRequests)
			authed.POST("/requests/:id/accept", guard.RequireAdmin(), hospitalHandler.AcceptRequest)
			authed.POST("/requests/:id/reject", guard.RequireAdmin(), hospitalHandler.RejectRequest)

			// New-hospital moderation queue
			authed.GET("/newhospitals", guard.RequireAdmin(), hospitalHandler.ListPendingHospitals)
			authed.POST("/:id/approvenewhospital", guard.RequireAdmin(), hospitalHandler.ApproveHospital)
			authed.POST("/:id/rejectnewhospital", guard.RequireAdmin(), hospitalHandler.RejectHospital)
		}

		hospitals.GET("/:id", hospitalHandler.GetHospital)
	}

	// User accounts
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", userHandler.GetProfile)

		users.GET("", guard.RequireAdmin(), userHandler.ListUsers)
		users.GET("/:id", guard.RequireAdmin(), userHandler.GetUser)
		users.POST("/:id/status", guard.RequireAdmin(), userHandler.SetUserStatus)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server exited")
}
