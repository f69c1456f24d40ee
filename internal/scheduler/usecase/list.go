package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
)

// ListEvents resolves the date expression into a one-day window and fans one
// list request per configured calendar out concurrently. An unresolvable
// expression returns empty per-source results and issues no remote call, so
// a garbled date can never turn into an unbounded query.
func (uc *implUseCase) ListEvents(ctx context.Context, input scheduler.ListEventsInput) (scheduler.ListEventsOutput, error) {
	window, err := uc.resolver.Resolve(input.SpecificDate, uc.nowFn())
	if err != nil {
		if errors.Is(err, datemath.ErrUnresolvedExpression) {
			uc.l.Warnf(ctx, "uc.ListEvents: %v, skipping calendar queries", err)
			return scheduler.ListEventsOutput{Success: true, Calendars: uc.emptyCalendars()}, nil
		}
		return scheduler.ListEventsOutput{}, err
	}

	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = uc.cfg.DefaultMaxResults
	}

	calendars := uc.listAcross(ctx, window, uc.cfg.CalendarIDs, maxResults)

	for _, cal := range calendars {
		if cal.Error != "" {
			uc.l.Warnf(ctx, "uc.ListEvents: calendar %s failed: %s", cal.CalendarID, cal.Error)
			continue
		}
		uc.l.Debugf(ctx, "uc.ListEvents: calendar %s returned %d events", cal.CalendarID, len(cal.Events))
		for _, evt := range cal.Events {
			uc.l.Debugf(ctx, "  %s | %s | %s", evt.InitialDate, evt.FinalDate, evt.Summary)
		}
	}

	return scheduler.ListEventsOutput{Success: true, Calendars: calendars}, nil
}

// listAcross issues one request per source concurrently and waits for all of
// them. Results come back in the given source order regardless of completion
// order, and one source failing never aborts the others.
func (uc *implUseCase) listAcross(ctx context.Context, window datemath.Window, sources []string, maxResults int64) []model.CalendarEvents {
	results := make([]model.CalendarEvents, len(sources))

	var wg sync.WaitGroup
	for i, calendarID := range sources {
		wg.Add(1)
		go func(i int, calendarID string) {
			defer wg.Done()

			events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
				CalendarID: calendarID,
				TimeMin:    window.Start,
				TimeMax:    window.End,
				MaxResults: maxResults,
			})
			if err != nil {
				results[i] = model.CalendarEvents{
					CalendarID: calendarID,
					Events:     []model.NormalizedEvent{},
					Error:      err.Error(),
				}
				return
			}

			results[i] = model.CalendarEvents{
				CalendarID: calendarID,
				Events:     normalizeEvents(calendarID, events),
			}
		}(i, calendarID)
	}
	wg.Wait()

	return results
}

// emptyCalendars returns one zero-event result per configured source.
func (uc *implUseCase) emptyCalendars() []model.CalendarEvents {
	calendars := make([]model.CalendarEvents, len(uc.cfg.CalendarIDs))
	for i, calendarID := range uc.cfg.CalendarIDs {
		calendars[i] = model.CalendarEvents{
			CalendarID: calendarID,
			Events:     []model.NormalizedEvent{},
		}
	}
	return calendars
}
