package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/auth"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/config"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/database"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/handlers"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/logger"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/middleware"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	if _, err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.GinMode,
		File:        cfg.LogFile,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.MigrateDatabase(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Pick the token verifier
	var verifier auth.Verifier
	switch cfg.AuthMode {
	case "jwt":
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is required when AUTH_MODE=jwt")
		}
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	default:
		if cfg.AuthURL == "" {
			log.Fatal("AUTH_URL is required when AUTH_MODE=remote")
		}
		verifier = auth.NewRemoteVerifier(cfg.AuthURL, cfg.AuthAPIKey)
	}

	// Wire repositories, services and handlers
	db := database.GetDB()
	meetingHandler := handlers.NewMeetingHandler(
		services.NewMeetingService(repository.NewMeetingRepository(db)))
	userHandler := handlers.NewUserHandler(
		services.NewUserService(repository.NewUserRepository(db)))
	availabilityHandler := handlers.NewAvailabilityHandler(
		services.NewAvailabilityService(repository.NewAvailabilityRepository(db)))

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Meeting Scheduler API is running",
		})
	})

	// Prometheus endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(verifier)

	// Meeting routes (protected)
	meetings := r.Group("/meetings")
	meetings.Use(requireAuth)
	{
		meetings.POST("/create", meetingHandler.CreateMeeting)
		meetings.GET("/", meetingHandler.ListMeetings)
		meetings.PUT("/:meeting_id", meetingHandler.UpdateMeeting)
		meetings.DELETE("/:meeting_id", meetingHandler.CancelMeeting)
		meetings.PATCH("/:meeting_id/resize", meetingHandler.ResizeMeeting)
		meetings.PUT("/:meeting_id/attendees", meetingHandler.UpdateAttendance)
		meetings.POST("/:meeting_id/attendees", meetingHandler.AddAttendee)
	}

	// User directory (protected)
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", userHandler.ListUsers)
	}

	// Availability routes (protected)
	availability := r.Group("/availability")
	availability.Use(requireAuth)
	{
		availability.GET("", availabilityHandler.ListAvailability)
		availability.POST("", availabilityHandler.CreateAvailability)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
