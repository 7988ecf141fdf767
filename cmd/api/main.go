package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-backend/config"
	"todo-backend/config/postgre"
	_ "todo-backend/docs" // Swagger docs
	"todo-backend/internal/httpserver"
	"todo-backend/pkg/expopush"
	"todo-backend/pkg/gcalendar"
	"todo-backend/pkg/log"
)

// @title       Todo Backend API
// @description Backend for the mobile to-do app: todos, statistics, device registry and due-task push notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// Expo push client
	pushClient := expopush.NewClient(cfg.Expo.Timeout)
	if cfg.Expo.PushURL != "" {
		pushClient.SetAPIURL(cfg.Expo.PushURL)
	}

	// Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              postgresDB,
		JWTSecret:       cfg.Auth.JWTSecret,
		InternalKey:     cfg.Notifier.InternalKey,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Push:            pushClient,
		Calendar:        calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
