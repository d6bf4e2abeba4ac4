package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"contenthub-api/config"
	"contenthub-api/database"
	"contenthub-api/jobs"
	"contenthub-api/middleware"
	"contenthub-api/routes"
	"contenthub-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg)

	// Create router
	router := gin.Default()

	router.Use(routes.SetupCORS())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 20))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Orphaned content nodes are swept in the background; the store has no
	// delete cascade.
	cleanupJob := jobs.NewNodeCleanupJob(db, time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Start server
	log.Printf("Starting ContentHub API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
