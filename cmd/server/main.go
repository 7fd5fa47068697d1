package main

import (
	"log"

	"github.com/codeLord61/Exchangify/internal/router"
	"github.com/codeLord61/Exchangify/pkg/config"
	"github.com/codeLord61/Exchangify/pkg/logger"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}

	store, err := storage.NewStore(cfg.UploadRoot, zlog)
	if err != nil {
		zlog.Fatalw("failed to prepare upload storage", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	router.SetupMiddleware(e)

	if err := router.SetupRoutes(e, db, cfg, store, zlog); err != nil {
		zlog.Fatalw("failed to set up routes", "error", err)
	}

	if err := config.Seed(db, zlog); err != nil {
		zlog.Fatalw("failed to seed database", "error", err)
	}

	zlog.Infow("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
