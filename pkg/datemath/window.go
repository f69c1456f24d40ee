package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Resolver converts date expressions into one-day query windows.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a window resolver for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve converts a date expression into a half-open [Start, End) window
// spanning one day. Keyword expressions ("today"/"hoje", "tomorrow"/"amanhã")
// resolve to local midnight in the resolver's timezone; YYYY-MM-DD dates
// resolve to UTC midnight so the window does not drift with the local zone.
// Anything else yields ErrUnresolvedExpression.
func (r *Resolver) Resolve(expr string, now time.Time) (Window, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	for _, kw := range todayKeywords {
		if expr == kw {
			start := r.startOfDay(now)
			return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
		}
	}

	for _, kw := range tomorrowKeywords {
		if expr == kw {
			start := r.startOfDay(now.AddDate(0, 0, 1))
			return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
		}
	}

	if m := isoDateRe.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])

		start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
	}

	return Window{}, fmt.Errorf("%w: %q", ErrUnresolvedExpression, expr)
}

// startOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
