package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/router"
	"github.com/pixgram/backend/pkg/config"
	"github.com/pixgram/backend/pkg/logger"
	"github.com/pixgram/backend/pkg/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to initialize databases: " + err.Error())
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, logger.Get()); err != nil {
		logger.Get().Fatal("Failed to set up routes: " + err.Error())
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
