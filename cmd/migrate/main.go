// Command migrate applies the embedded schema migrations to the configured
// PostgreSQL database. Pass "down" to roll back the most recent one.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"keep/config"
	"keep/internal/infra/persistence/migrations"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Error("Failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("Failed to set goose dialect", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	default:
		logger.Error("Unknown direction, want up or down", slog.String("direction", direction))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Migration failed", slog.String("direction", direction), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migrations applied", slog.String("direction", direction))
}
