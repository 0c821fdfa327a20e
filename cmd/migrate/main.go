// Command migrate applies pending database migrations and exits. It is meant
// for deploy pipelines that keep DATABASE_AUTO_MIGRATE disabled on servers.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/app"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
	"github.com/yonasBSD/klickbee-crm-sub001/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
	if err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	logger.Info("migrations complete", slog.Int("applied", len(results)))
}
