package main

import (
	"flag"
	"log"
	"os"

	"github.com/astevens246/auth-fantasy-football/internal/config"
	"github.com/astevens246/auth-fantasy-football/internal/database"
	"github.com/astevens246/auth-fantasy-football/internal/logging"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/astevens246/auth-fantasy-football/internal/services"
	"go.uber.org/zap"
)

func main() {
	csvPath := flag.String("csv", "Fantasy_Football_2025_Draft.csv", "path to the draft sheet")
	flag.Parse()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal("failed to open draft sheet",
			zap.String("path", *csvPath),
			zap.Error(err),
		)
	}
	defer file.Close()

	importService := services.NewImportService(
		repository.NewPlayerRepository(database.GetDB()),
		logger,
	)

	report, err := importService.ImportCSV(file)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	logger.Info("players seeded",
		zap.String("csv", *csvPath),
		zap.Int("total", report.Total),
		zap.Int("inserted", report.Inserted),
		zap.Int("skipped_duplicate", report.SkippedDuplicate),
		zap.Int("skipped_position", report.SkippedPosition),
	)
}
