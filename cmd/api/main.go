package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gdd-roadmap/config"
	_ "gdd-roadmap/docs" // Swagger docs
	analysisHTTP "gdd-roadmap/internal/analysis/delivery/http"
	"gdd-roadmap/internal/analysis/repository/sqlite"
	analysisUC "gdd-roadmap/internal/analysis/usecase"
	"gdd-roadmap/internal/httpserver"
	"gdd-roadmap/internal/middleware"
	"gdd-roadmap/pkg/datemath"
	"gdd-roadmap/pkg/gcalendar"
	"gdd-roadmap/pkg/llmprovider"
	"gdd-roadmap/pkg/log"
)

// @title       GDD Roadmap API
// @description Turns game design documents into a quarter timeline and a task board with a generative language model.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting GDD Roadmap API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	store, err := sqlite.New(cfg.Storage.SQLitePath, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store %s: %v", cfg.Storage.SQLitePath, err)
		return
	}
	defer store.Close()

	// 4. LLM providers
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	logger.Infof(ctx, "LLM providers (in order): %v", llm.Providers())

	// 5. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar client (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.Enabled() {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `roadmap calendar-auth <credentials.json>` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Analysis domain
	uc := analysisUC.New(logger, llm, store, calendarClient, dateMathParser, analysisUC.Config{
		Temperature:     cfg.Analysis.Temperature,
		MaxOutputTokens: cfg.Analysis.MaxOutputTokens,
		StateTTL:        cfg.Analysis.StateTTL,
		MaxUploadBytes:  cfg.Upload.MaxBytes(),
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Ready:           store.Ping,
		Middleware:      middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		AnalysisHandler: analysisHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
