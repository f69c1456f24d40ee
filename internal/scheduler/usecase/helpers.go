package usecase

import (
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
)

const (
	// dateTimeLayout is the zone-less ISO layout sent to the calendar API;
	// the payload's timeZone field names the zone it is interpreted in.
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"

	// placeholderSummary substitutes for events without a title.
	placeholderSummary = "No title"
)

// normalizeEvents maps raw source events onto the common shape, preferring
// the precise timestamp over the date-only field on both ends.
func normalizeEvents(calendarID string, events []gcalendar.Event) []model.NormalizedEvent {
	normalized := make([]model.NormalizedEvent, 0, len(events))
	for _, evt := range events {
		summary := evt.Summary
		if summary == "" {
			summary = placeholderSummary
		}
		normalized = append(normalized, model.NormalizedEvent{
			InitialDate: evt.Start.Value(),
			FinalDate:   evt.End.Value(),
			Summary:     summary,
			CalendarID:  calendarID,
		})
	}
	return normalized
}

// resolveDateTime passes strict ISO date-times through unchanged and runs
// everything else through the natural-language parser.
func (uc *implUseCase) resolveDateTime(s string) string {
	if datemath.IsDateTime(s) {
		return s
	}
	return uc.parser.Parse(s, uc.nowFn()).Format(dateTimeLayout)
}

// resolveInstant turns a start/end expression into an absolute instant.
func (uc *implUseCase) resolveInstant(s string) (time.Time, error) {
	if datemath.IsDateTime(s) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		return time.ParseInLocation(dateTimeLayout, s, uc.location)
	}
	return uc.parser.Parse(s, uc.nowFn()), nil
}

// parseEventTime parses a normalized event boundary. All-day boundaries carry
// a bare date and resolve to local midnight.
func (uc *implUseCase) parseEventTime(s string) (t time.Time, allDay bool, err error) {
	if len(s) == len(dateLayout) {
		t, err = time.ParseInLocation(dateLayout, s, uc.location)
		return t, true, err
	}
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err = time.ParseInLocation(dateTimeLayout, s, uc.location)
	return t, false, err
}
