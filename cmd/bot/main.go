// Command bot runs the Telegram companion with its reminder scheduler.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linguatrack/backend/internal/app"
	"github.com/linguatrack/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunBot(ctx, cfg, logger); err != nil {
		logger.Error("bot exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
