package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateTimeRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
	timeOfDayRe = regexp.MustCompile(`(\d+)(?::(\d+))?\s*(am|pm)?`)
)

// IsDateTime reports whether s already carries a strict ISO date-time prefix
// (YYYY-MM-DDTHH:MM:SS). Callers use this as a fast path to skip Parse and
// hand the value through to the remote calendar unchanged.
func IsDateTime(s string) bool {
	return dateTimeRe.MatchString(s)
}

// Parser converts natural-language date/time expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a natural date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts natural text like "amanhã às 14h" or "today 7:30pm" into an
// absolute instant. A "tomorrow" keyword without a time defaults to 09:00; a
// "today" keyword without a time defaults to the current hour with minutes and
// seconds zeroed. Text with no recognized keyword falls back to now — callers
// must not rely on that fallback for correctness.
func (p *Parser) Parse(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	base := now.In(p.location)

	if containsAny(lower, tomorrowKeywords) {
		day := base.AddDate(0, 0, 1)
		if hour, minute, ok := extractTimeOfDay(lower); ok {
			return p.at(day, hour, minute)
		}
		return p.at(day, 9, 0)
	}

	if containsAny(lower, todayKeywords) {
		if hour, minute, ok := extractTimeOfDay(lower); ok {
			return p.at(base, hour, minute)
		}
		return p.at(base, base.Hour(), 0)
	}

	return base
}

// at pins a wall-clock time onto the day of t in the parser's timezone.
func (p *Parser) at(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}

// extractTimeOfDay pulls an hour/minute pattern like "14", "7:30pm" or "9 am"
// out of the text and maps am/pm onto a 24-hour clock.
func extractTimeOfDay(text string) (hour, minute int, ok bool) {
	m := timeOfDayRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	isPM := m[3] == "pm"
	switch {
	case isPM && hour != 12:
		hour += 12
	case !isPM && hour == 12:
		hour = 0
	}

	return hour, minute, true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
