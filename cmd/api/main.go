package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // zone database for slim containers

	"abe-voice/config"
	_ "abe-voice/docs" // Swagger docs
	"abe-voice/internal/httpserver"
	"abe-voice/internal/middleware"
	"abe-voice/internal/model"
	skillHTTP "abe-voice/internal/skill/delivery/http"
	"abe-voice/internal/skill/repository"
	abeRepo "abe-voice/internal/skill/repository/abe"
	gcalRepo "abe-voice/internal/skill/repository/gcal"
	"abe-voice/internal/skill/usecase"
	"abe-voice/pkg/abe"
	"abe-voice/pkg/gcalendar"
	"abe-voice/pkg/log"
)

// @title       ABE Voice Skill API
// @description Voice skill webhook answering questions about the ABE event calendar.
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

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ABE voice skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	zones, err := model.LoadZones(cfg.ABE.SourceTimezone, cfg.Skill.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to load time zones: ", err)
		os.Exit(1)
	}

	// 3. Calendar backend
	repo, err := newEventRepository(ctx, cfg, zones, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar backend: ", err)
		os.Exit(1)
	}

	// 4. Skill domain
	skillUC := usecase.New(logger, repo, usecase.Config{
		CalendarName:  cfg.Calendar.Name,
		Contact:       cfg.Skill.Contact,
		FeaturedLabel: cfg.Skill.FeaturedLabel,
		LookaheadDays: cfg.Skill.LookaheadDays,
		Location:      zones.Display,
	})
	skillHandler := skillHTTP.New(logger, skillUC)

	mw := middleware.New(logger, middleware.Config{
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SkillHandler: skillHandler,
		Middleware:   mw,
		WebhookPath:  cfg.Webhook.Path,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newEventRepository(ctx context.Context, cfg *config.Config, zones model.Zones, logger log.Logger) (repository.EventRepository, error) {
	switch cfg.Calendar.Backend {
	case config.BackendGoogle:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
		logger.Infof(ctx, "Calendar backend: Google Calendar (%s)", cfg.GoogleCalendar.CalendarID)
		return gcalRepo.New(client, cfg.GoogleCalendar.CalendarID, zones, logger), nil
	default:
		logger.Infof(ctx, "Calendar backend: ABE (%s, timeout %s)", cfg.ABE.URL, cfg.ABE.Timeout)
		return abeRepo.New(abe.NewClient(cfg.ABE.URL, cfg.ABE.Timeout), zones, logger), nil
	}
}
