package datemath_test

import (
	"errors"
	"testing"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	now := time.Date(2025, 5, 7, 15, 30, 0, 0, time.UTC) // Wednesday, May 7, 2025
	todayMidnight := time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expr      string
		wantStart time.Time
		wantErr   bool
	}{
		{
			name:      "Today keyword",
			expr:      "today",
			wantStart: todayMidnight,
		},
		{
			name:      "Today keyword Portuguese",
			expr:      "hoje",
			wantStart: todayMidnight,
		},
		{
			name:      "Today keyword mixed case",
			expr:      "  Hoje ",
			wantStart: todayMidnight,
		},
		{
			name:      "Tomorrow keyword",
			expr:      "tomorrow",
			wantStart: todayMidnight.AddDate(0, 0, 1),
		},
		{
			name:      "Tomorrow keyword Portuguese",
			expr:      "amanhã",
			wantStart: todayMidnight.AddDate(0, 0, 1),
		},
		{
			name:      "Tomorrow keyword without diacritic",
			expr:      "amanha",
			wantStart: todayMidnight.AddDate(0, 0, 1),
		},
		{
			name:      "ISO date",
			expr:      "2025-11-10",
			wantStart: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ISO date month rollover",
			expr:      "2025-01-31",
			wantStart: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ISO date year rollover",
			expr:      "2025-12-31",
			wantStart: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Empty expression",
			expr:    "",
			wantErr: true,
		},
		{
			name:    "Unknown keyword",
			expr:    "next friday",
			wantErr: true,
		},
		{
			name:    "Malformed date",
			expr:    "2025-1-31",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.expr, now)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnresolvedExpression) {
					t.Fatalf("Resolve() error = %v, want ErrUnresolvedExpression", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Resolve() start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantStart.AddDate(0, 0, 1)) {
				t.Errorf("Resolve() end = %v, want %v", got.End, tt.wantStart.AddDate(0, 0, 1))
			}
		})
	}
}

func TestResolveMonthBoundary(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	now := time.Date(2025, 5, 7, 12, 0, 0, 0, time.UTC)

	window, err := resolver.Resolve("2025-01-31", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantEnd := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if !window.End.Equal(wantEnd) {
		t.Errorf("window end = %v, want %v", window.End, wantEnd)
	}
}
