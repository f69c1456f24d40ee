package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock calendar client. List requests arrive concurrently, so counters are
// guarded.
type mockCalendarClient struct {
	mu          sync.Mutex
	listCalls   int
	createCalls int
	listReqs    []gcalendar.ListEventsRequest
	lastCreate  gcalendar.CreateEventRequest

	eventsByCal map[string][]gcalendar.Event
	errByCal    map[string]error
	created     *gcalendar.Event
	createErr   error
}

func (m *mockCalendarClient) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.mu.Lock()
	m.listCalls++
	m.listReqs = append(m.listReqs, req)
	m.mu.Unlock()

	if err, ok := m.errByCal[req.CalendarID]; ok {
		return nil, err
	}
	return m.eventsByCal[req.CalendarID], nil
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	m.createCalls++
	m.lastCreate = req
	m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &gcalendar.Event{ID: "event-1", HtmlLink: "https://calendar.google.com/event-1"}, nil
}

// testNow is the fixed reference instant used across use case tests.
var testNow = time.Date(2025, 5, 7, 15, 0, 0, 0, time.UTC)

func newTestUseCase(client *mockCalendarClient, cfg Config) *implUseCase {
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	resolver, _ := datemath.NewResolver(cfg.Timezone)
	parser, _ := datemath.NewParser(cfg.Timezone)

	uc := New(&mockLogger{}, client, resolver, parser, cfg)
	uc.nowFn = func() time.Time { return testNow }
	return uc
}
