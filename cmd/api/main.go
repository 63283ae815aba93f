package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"day-planner/config"
	"day-planner/internal/httpserver"
	"day-planner/internal/planner/usecase"
	"day-planner/pkg/clerk"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/log"
	"day-planner/pkg/sdimage"
	"day-planner/pkg/textgen"
)

// @title       Day Planner API
// @description Turns free-text day plans into calendar events with AI task extraction and image enrichment.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Optional .env for local development
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}

	// 4. Text-generation provider (fixed for the process lifetime)
	provider, err := textgen.New(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create text-generation provider: %v", err)
	}
	logger.Infof(ctx, "Text-generation provider: %s (%s)", provider.Name(), provider.Model())

	// 5. Image backend
	imageClient, err := sdimage.New(sdimage.Config{
		BaseURL:        cfg.Image.BaseURL,
		Timeout:        cfg.Image.Timeout,
		UsePlaceholder: cfg.Image.UsePlaceholder,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create image client: %v", err)
	}
	if cfg.Image.UsePlaceholder {
		logger.Warn(ctx, "Image backend in placeholder mode, no images will be generated")
	}

	// 6. Clerk
	clerkClient, err := clerk.New(clerk.Config{
		APIURL:    cfg.Clerk.APIURL,
		SecretKey: cfg.Clerk.SecretKey,
		CacheSize: cfg.Clerk.ProfileCache,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create clerk client: %v", err)
	}

	// 7. Google Calendar
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create calendar client: %v", err)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Provider:    provider,
		Calendar:    calendarClient,
		Image:       imageClient,
		Clerk:       clerkClient,
		Planner: usecase.Config{
			Timezone:    cfg.Planner.Timezone,
			PacingDelay: cfg.Planner.PacingDelay,
			CalendarID:  cfg.GoogleCalendar.CalendarID,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
