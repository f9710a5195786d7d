package routes

import (
	"ClinicRecords/cache"
	"ClinicRecords/config"
	"ClinicRecords/controllers"
	"ClinicRecords/handlers"
	"ClinicRecords/middlewares"
	"ClinicRecords/repositories"
	"ClinicRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://records.example.com"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	personRepo := repositories.NewPersonRepository(db, cache)
	phoneNumberRepo := repositories.NewPhoneNumberRepository(db, cache)
	queryRepo := repositories.NewQueryRepository(db, cache)
	adminRepo := repositories.NewAdminRepository(db, cache)

	personHandler := handlers.NewPersonHandler(services.NewPersonService(personRepo))
	phoneNumberHandler := handlers.NewPhoneNumberHandler(services.NewPhoneNumberService(phoneNumberRepo))
	queryHandler := handlers.NewQueryHandler(services.NewQueryService(queryRepo))
	adminHandler := handlers.NewAdminHandler(services.NewAdminService(adminRepo))

	// Register routes
	controllers.SetupRecordRoutes(router, personHandler, phoneNumberHandler, queryHandler, adminHandler)
	controllers.SetupRootRoutes(router, personHandler)

	return router
}
