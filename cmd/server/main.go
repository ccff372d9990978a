package main

import (
	"log"
	"os"
	"time"

	"roster-backend/internal/api/routes"
	"roster-backend/internal/config"
	"roster-backend/internal/database"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "roster-backend/docs" // This is needed for swag
)

//	@title			Roster Backend API
//	@version		1.0
//	@description	Backend API for weekly shift scheduling across an organization's business locations, including worker availability, conflict-checked assignment, and archived weekly reports.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start the background archive job
	startArchiveJob(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// startArchiveJob runs the weekly archive check on a ticker. The job itself is
// idempotent per day, so the interval only controls detection latency.
func startArchiveJob(db *gorm.DB, cfg *config.Config) {
	policy, err := schedule.LoadPolicy(cfg.SchedulePolicyPath)
	if err != nil {
		logrus.Warnf("Failed to load schedule policy for archive job, using defaults: %v", err)
		policy = schedule.DefaultPolicy()
	}

	archiveService := service.NewArchiveService(
		repository.NewShiftRepository(db),
		repository.NewWeeklyReportRepository(db),
		repository.NewArchiveRunRepository(db),
		policy,
		schedule.SystemClock{},
		logger.New(),
	)

	interval := time.Duration(cfg.ArchiveCheckInterval) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if _, err := archiveService.ArchiveIfDue(); err != nil {
			logrus.Errorf("Archive check failed: %v", err)
		}
		for range ticker.C {
			if _, err := archiveService.ArchiveIfDue(); err != nil {
				logrus.Errorf("Archive check failed: %v", err)
			}
		}
	}()
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
