package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/infra/db"
	"rental-contracts/internal/pkg/config"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|redo|reset")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	logger.Info("running migrations", "cmd", *cmd)
	if err := db.Migrate(ctx, pool, *cmd, flag.Args()...); err != nil {
		logger.Error("migration failed", "cmd", *cmd, "error", err)
		cleanup()
		os.Exit(1)
	}
	logger.Info("migrations finished", "cmd", *cmd)
}
