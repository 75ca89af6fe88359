package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/appdev-labs/photofeed/internal/router"
	"github.com/appdev-labs/photofeed/internal/storage"
	"github.com/appdev-labs/photofeed/pkg/config"
	"github.com/appdev-labs/photofeed/pkg/logger"
	"github.com/appdev-labs/photofeed/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Initialize database connection
	db, err := config.InitDB(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db, zapLog)

	// Initialize media storage
	media, err := storage.NewMediaStore(cfg.UploadDir)
	if err != nil {
		zapLog.Fatal("Failed to initialize media storage", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, zapLog)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, media, cfg.SessionMaxAge, zapLog); err != nil {
		zapLog.Fatal("Failed to set up routes", zap.Error(err))
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
