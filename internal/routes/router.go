package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drone-fleet-manager/internal/config"
	"drone-fleet-manager/internal/delivery/http/handler"
	"drone-fleet-manager/internal/infrastructure/database/sqlite"
	"drone-fleet-manager/internal/logger"
	"drone-fleet-manager/internal/middleware"
	"drone-fleet-manager/internal/usecase/audit"
	"drone-fleet-manager/internal/usecase/drone"
	"drone-fleet-manager/internal/usecase/medication"
)

func SetupRoutes(cfg *config.Config, db *sqlite.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	droneRepository := sqlite.NewDroneRepository(db)
	medicationRepository := sqlite.NewMedicationRepository(db)
	auditRepository := sqlite.NewAuditRepository(db)

	droneService := drone.NewService(droneRepository, medicationRepository)
	droneHandler := handler.NewDroneHandler(droneService)

	medicationService := medication.NewService(medicationRepository)
	medicationHandler := handler.NewMedicationHandler(medicationService)

	auditService := audit.NewService(droneRepository, auditRepository)
	auditHandler := handler.NewAuditHandler(auditService)

	v1 := router.Group("/api/v1")
	{
		droneHandler.RegisterRoutes(v1)
		medicationHandler.RegisterRoutes(v1)
		auditHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router
}
