package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/joho/godotenv"

	"github.com/goconduit/conduit/internal/config"
	"github.com/goconduit/conduit/internal/core"
	"github.com/goconduit/conduit/internal/credentials"
	"github.com/goconduit/conduit/internal/database"
	"github.com/goconduit/conduit/internal/seed"
	"github.com/goconduit/conduit/internal/utils/databaseutils"
)

func main() {
	runSeed := flag.Bool("seed", false, "populate the database with sample content")
	flag.Parse()

	logger := configLogger()
	logger.Info("Starting application...")

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("Error opening database connection", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Database connection established successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.InitSchema(ctx, db); err != nil {
		logger.Error("Error initializing schema", "error", err)
		os.Exit(1)
	}

	logger.Info("Database schema initialized")

	if *runSeed {
		creds := credentials.NewManager(cfg)
		sqlTemplate := databaseutils.NewSQLTemplate(db, cfg.Database.QueryTimeout)
		graphCore := core.NewCore(db, logger, sqlTemplate, creds)

		if err := seed.New(graphCore, logger).Run(ctx); err != nil {
			logger.Error("Error seeding database", "error", err)
			os.Exit(1)
		}
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	logger := slog.New(handler)
	return logger
}
