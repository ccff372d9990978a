package routes

import (
	"log"

	"roster-backend/internal/api/handlers"
	"roster-backend/internal/api/middleware"
	"roster-backend/internal/config"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Scheduling constants come from the policy file when present
	policy, err := schedule.LoadPolicy(cfg.SchedulePolicyPath)
	if err != nil {
		log.Printf("Warning: failed to load schedule policy, using defaults: %v", err)
		policy = schedule.DefaultPolicy()
	}
	clock := schedule.SystemClock{}

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	reportRepo := repository.NewWeeklyReportRepository(db)
	archiveRunRepo := repository.NewArchiveRunRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	businessService := service.NewBusinessService(businessRepo, organizationRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, organizationRepo, validator)
	availabilityService := service.NewAvailabilityService(availabilityRepo, employeeRepo, policy, clock, validator)
	conflictDetector := service.NewConflictDetector(shiftRepo)
	rosterService := service.NewRosterService(shiftRepo, employeeRepo, businessRepo, organizationRepo, availabilityService, conflictDetector, policy, clock, validator)
	archiveService := service.NewArchiveService(shiftRepo, reportRepo, archiveRunRepo, policy, clock, logger.New())
	reportService := service.NewReportService(reportRepo, shiftRepo, businessRepo, clock)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	reportHandler := handlers.NewReportHandler(reportService, archiveService, clock)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.GET("/:id/businesses", businessHandler.GetBusinessesByOrganization)
			organizations.GET("/:id/employees", employeeHandler.GetEmployeesByOrganization)
			organizations.DELETE("/:id/shifts", rosterHandler.ClearOrganizationRosters)
		}

		// Business routes
		businesses := v1.Group("/businesses")
		{
			businesses.POST("", businessHandler.CreateBusiness)
			businesses.GET("/:id", businessHandler.GetBusiness)
			businesses.DELETE("/:id", businessHandler.DeleteBusiness)
			businesses.GET("/:id/board", rosterHandler.GetBoard)
			businesses.DELETE("/:id/shifts", rosterHandler.ClearBusinessRoster)
			businesses.GET("/:id/reports", reportHandler.GetWeeklyReport)
			businesses.GET("/:id/weeks", reportHandler.ListWeeks)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			employees.GET("/:id/availability", availabilityHandler.GetAvailability)
			employees.PUT("/:id/availability", availabilityHandler.SetAvailability)
			employees.DELETE("/:id/availability", availabilityHandler.ResetAvailability)
			employees.GET("/:id/schedule", rosterHandler.GetWeeklySchedule)
		}

		// Shift assignment routes; the slot identity travels in the body
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", rosterHandler.AssignShift)
			shifts.DELETE("", rosterHandler.RemoveShift)
			shifts.PUT("/times", rosterHandler.EditShiftTime)
		}

		// Archive routes
		reports := v1.Group("/reports")
		{
			reports.POST("/archive", reportHandler.TriggerArchive)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
