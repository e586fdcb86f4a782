package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pressdeck/config"
	"pressdeck/internal/app"
	"pressdeck/pkg/logger"
)

func main() {
	// Key-value pairs from a local .env file, if any.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Error("init failed", "error", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
