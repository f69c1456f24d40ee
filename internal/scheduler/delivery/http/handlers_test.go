package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/middleware"
	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	schedHTTP "github.com/AI-Agents-Org/scheduler-agent/internal/scheduler/delivery/http"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/response"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	listOut   scheduler.ListEventsOutput
	listErr   error
	lastList  scheduler.ListEventsInput
	createOut scheduler.CreateEventOutput
	createErr error
	availOut  scheduler.CheckAvailabilityOutput
	availErr  error
	nowOut    scheduler.CurrentDateOutput
}

func (m *mockUseCase) ListEvents(ctx context.Context, input scheduler.ListEventsInput) (scheduler.ListEventsOutput, error) {
	m.lastList = input
	return m.listOut, m.listErr
}

func (m *mockUseCase) CreateEvent(ctx context.Context, input scheduler.CreateEventInput) (scheduler.CreateEventOutput, error) {
	return m.createOut, m.createErr
}

func (m *mockUseCase) CheckAvailability(ctx context.Context, input scheduler.CheckAvailabilityInput) (scheduler.CheckAvailabilityOutput, error) {
	return m.availOut, m.availErr
}

func (m *mockUseCase) CurrentDate(ctx context.Context) (scheduler.CurrentDateOutput, error) {
	return m.nowOut, nil
}

func newTestRouter(uc scheduler.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := &mockLogger{}
	h := schedHTTP.New(l, uc)
	schedHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, 600))
	return r
}

func TestHandlers(t *testing.T) {
	t.Run("List events", func(t *testing.T) {
		uc := &mockUseCase{
			listOut: scheduler.ListEventsOutput{
				Success: true,
				Calendars: []model.CalendarEvents{
					{
						CalendarID: "personal@example.com",
						Events: []model.NormalizedEvent{
							{InitialDate: "2025-05-08T10:00:00-03:00", FinalDate: "2025-05-08T11:00:00-03:00", Summary: "Consulta", CalendarID: "personal@example.com"},
						},
					},
				},
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/scheduler/events?specificDate=tomorrow&maxResults=3", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastList.SpecificDate != "tomorrow" || uc.lastList.MaxResults != 3 {
			t.Errorf("query not forwarded: %+v", uc.lastList)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		if !strings.Contains(w.Body.String(), "Consulta") {
			t.Errorf("expected event summary in body: %s", w.Body.String())
		}
	})

	t.Run("Create event", func(t *testing.T) {
		uc := &mockUseCase{
			createOut: scheduler.CreateEventOutput{Success: true, EventID: "event-1", Link: "https://calendar.google.com/event-1"},
		}
		r := newTestRouter(uc)

		body, _ := json.Marshal(map[string]interface{}{
			"summary":       "Jogo do inter",
			"startDateTime": "2025-05-08T21:40:00",
			"endDateTime":   "2025-05-08T23:00:00",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "event-1") {
			t.Errorf("expected event id in body: %s", w.Body.String())
		}
	})

	t.Run("Create event missing summary is rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		body, _ := json.Marshal(map[string]interface{}{
			"startDateTime": "2025-05-08T21:40:00",
			"endDateTime":   "2025-05-08T23:00:00",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Create event use case error is mapped", func(t *testing.T) {
		uc := &mockUseCase{createErr: scheduler.ErrMissingStartTime}
		r := newTestRouter(uc)

		body, _ := json.Marshal(map[string]interface{}{
			"summary":       "Jogo do inter",
			"startDateTime": " ",
			"endDateTime":   "2025-05-08T23:00:00",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), scheduler.ErrMissingStartTime.Error()) {
			t.Errorf("expected validation message in body: %s", w.Body.String())
		}
	})

	t.Run("Availability", func(t *testing.T) {
		uc := &mockUseCase{
			availOut: scheduler.CheckAvailabilityOutput{
				Success:   true,
				Available: false,
				Conflicts: []model.NormalizedEvent{
					{InitialDate: "2025-05-08T10:30:00-03:00", FinalDate: "2025-05-08T11:30:00-03:00", Summary: "Consulta", CalendarID: "personal@example.com"},
				},
			},
		}
		r := newTestRouter(uc)

		body, _ := json.Marshal(map[string]interface{}{
			"startDateTime": "2025-05-08T10:00:00",
			"endDateTime":   "2025-05-08T11:00:00",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/availability", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"available":false`) {
			t.Errorf("expected available=false in body: %s", w.Body.String())
		}
	})

	t.Run("Now", func(t *testing.T) {
		uc := &mockUseCase{
			nowOut: scheduler.CurrentDateOutput{Success: true, CurrentDate: "2025-05-07", FullDateTime: "2025-05-07T15:00:00-03:00"},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/scheduler/now", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "2025-05-07") {
			t.Errorf("expected current date in body: %s", w.Body.String())
		}
	})
}
