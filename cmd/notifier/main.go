package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-backend/config"
	"todo-backend/config/postgre"
	"todo-backend/internal/notifier/usecase"
	todoPostgre "todo-backend/internal/todo/repository/postgre"
	"todo-backend/pkg/expopush"
	"todo-backend/pkg/log"
)

// main is the entry point for the background notifier service.
// This binary ticks on a fixed interval and pushes reminders for todos whose
// due date has passed.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the notifier UseCase over the todo repository
//  3. Tick & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notifier service...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	pushClient := expopush.NewClient(cfg.Expo.Timeout)
	if cfg.Expo.PushURL != "" {
		pushClient.SetAPIURL(cfg.Expo.PushURL)
	}

	todoRepo := todoPostgre.New(postgresDB, logger)
	uc := usecase.New(logger, todoRepo, pushClient)

	interval := cfg.Notifier.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	logger.Infof(ctx, "Notifier ticking every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Notifier service stopped gracefully")
			return
		case <-ticker.C:
			out, err := uc.Run(ctx)
			if err != nil {
				logger.Errorf(ctx, "notifier run: %v", err)
				continue
			}
			if out.Sent > 0 {
				logger.Infof(ctx, "notifier run sent %d notifications", out.Sent)
			}
		}
	}
}
