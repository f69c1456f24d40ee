package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AI-Agents-Org/scheduler-agent/config"
	_ "github.com/AI-Agents-Org/scheduler-agent/docs" // Swagger docs
	"github.com/AI-Agents-Org/scheduler-agent/internal/agent"
	"github.com/AI-Agents-Org/scheduler-agent/internal/agent/tools"
	"github.com/AI-Agents-Org/scheduler-agent/internal/httpserver"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler/usecase"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

// @title       Scheduler Agent API
// @description Conversational scheduling core with multi-calendar aggregation over Google Calendar.
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

	logger.Info(ctx, "Starting Scheduler Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendars: %v", cfg.GoogleCalendar.CalendarIDs)

	// 3. Date resolution
	timezone := cfg.GoogleCalendar.Timezone
	resolver, rErr := datemath.NewResolver(timezone)
	if rErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, rErr)
		timezone = "UTC"
		resolver, _ = datemath.NewResolver(timezone)
	}
	parser, _ := datemath.NewParser(timezone)

	// 4. Google Calendar client
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 5. Scheduler UseCase
	schedulerUC := usecase.New(logger, calendarClient, resolver, parser, usecase.Config{
		CalendarIDs:       cfg.GoogleCalendar.CalendarIDs,
		PrimaryCalendarID: cfg.GoogleCalendar.PrimaryCalendarID,
		Timezone:          timezone,
		DefaultMaxResults: cfg.Scheduler.DefaultMaxResults,
	})

	// 6. Agent tool registry
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewListCalendarEventsTool(schedulerUC, logger))
	registry.Register(tools.NewCreateCalendarEventTool(schedulerUC, logger))
	registry.Register(tools.NewCheckAvailabilityTool(schedulerUC, logger))
	registry.Register(tools.NewGetCurrentDateTool(schedulerUC, logger))
	logger.Infof(ctx, "Registered %d agent tools", len(registry.List()))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SchedulerUC:     schedulerUC,
		RateLimitPerMin: cfg.Scheduler.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
