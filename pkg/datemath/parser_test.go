package datemath_test

import (
	"testing"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestIsDateTime(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2025-05-08T21:40:00", true},
		{"2025-05-08T21:40:00-03:00", true},
		{"2025-05-08", false},
		{"amanhã às 14h", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := datemath.IsDateTime(tt.s); got != tt.want {
			t.Errorf("IsDateTime(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 5, 7, 15, 42, 17, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "Tomorrow with Portuguese hour",
			text: "amanhã às 14h",
			want: time.Date(2025, 5, 8, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "Tomorrow without time defaults to 9am",
			text: "tomorrow",
			want: time.Date(2025, 5, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "Tomorrow with pm time",
			text: "tomorrow 7:30pm",
			want: time.Date(2025, 5, 8, 19, 30, 0, 0, time.UTC),
		},
		{
			name: "Tomorrow noon stays noon",
			text: "tomorrow 12pm",
			want: time.Date(2025, 5, 8, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "Tomorrow midnight",
			text: "tomorrow 12am",
			want: time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Today without time zeroes minutes",
			text: "hoje",
			want: time.Date(2025, 5, 7, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "Today with explicit time",
			text: "hoje 16:15",
			want: time.Date(2025, 5, 7, 16, 15, 0, 0, time.UTC),
		},
		{
			name: "Today with am time",
			text: "today at 8am",
			want: time.Date(2025, 5, 7, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "No keyword falls back to now",
			text: "10pm",
			want: now,
		},
		{
			name: "Garbage falls back to now",
			text: "sometime soon",
			want: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.text, now)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) got = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 5, 7, 10, 0, 0, 0, time.UTC)

	want := time.Date(2025, 5, 8, 14, 0, 0, 0, time.UTC)
	if got := parser.Parse("Amanhã às 14h", now); !got.Equal(want) {
		t.Errorf("Parse() got = %v, want %v", got, want)
	}
}
