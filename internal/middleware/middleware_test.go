package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/middleware"
)

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

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, 600)
	r := newRouter(mw)

	t.Run("generates an ID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("expected X-Request-ID to be set")
		}
	})

	t.Run("preserves an existing ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("expected req-123, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, 600)
		r := newRouter(mw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rejects a client that exceeds its burst", func(t *testing.T) {
		// 10 rpm means burst of 1: the second immediate request must fail.
		mw := middleware.New(&mockLogger{}, 10)
		r := newRouter(mw)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			r.ServeHTTP(w, req)

			if i == 0 && w.Code != http.StatusOK {
				t.Fatalf("first request should pass, got %d", w.Code)
			}
			if i == 1 && w.Code != http.StatusTooManyRequests {
				t.Errorf("second request should be limited, got %d", w.Code)
			}
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, 10)
		r := newRouter(mw)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		r.ServeHTTP(first, req)

		second := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.4:1234"
		r.ServeHTTP(second, req)

		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Errorf("distinct clients must not share buckets: %d, %d", first.Code, second.Code)
		}
	})

	t.Run("honors X-Forwarded-For", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, 10)
		r := newRouter(mw)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.5:1234"
			req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.5")
			r.ServeHTTP(w, req)

			if i == 1 && w.Code != http.StatusTooManyRequests {
				t.Errorf("forwarded client should be limited, got %d", w.Code)
			}
		}
	})
}
