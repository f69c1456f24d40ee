package usecase

import (
	"context"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
	pkgLog "github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config is the fixed calendar topology injected at construction. The source
// list is configuration, never user input.
type Config struct {
	CalendarIDs       []string
	PrimaryCalendarID string
	Timezone          string
	DefaultMaxResults int64
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar CalendarClient
	resolver *datemath.Resolver
	parser   *datemath.Parser
	cfg      Config
	location *time.Location
	nowFn    func() time.Time
}

// New creates a new scheduler UseCase instance.
func New(
	l pkgLog.Logger,
	calendar CalendarClient,
	resolver *datemath.Resolver,
	parser *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.PrimaryCalendarID == "" && len(cfg.CalendarIDs) > 0 {
		cfg.PrimaryCalendarID = cfg.CalendarIDs[0]
	}
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = 7
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &implUseCase{
		l:        l,
		calendar: calendar,
		resolver: resolver,
		parser:   parser,
		cfg:      cfg,
		location: loc,
		nowFn:    time.Now,
	}
}
