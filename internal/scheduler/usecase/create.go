package usecase

import (
	"context"

	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/gcalendar"
)

// CreateEvent validates the request, resolves natural-language start/end
// times, and submits exactly one event to exactly one calendar. The call is
// not idempotent: repeating it creates duplicate events. Remote failures are
// captured in the output, not propagated, and never retried here.
func (uc *implUseCase) CreateEvent(ctx context.Context, input scheduler.CreateEventInput) (scheduler.CreateEventOutput, error) {
	if err := validateCreateInput(input); err != nil {
		uc.l.Warnf(ctx, "uc.CreateEvent: rejected before remote call: %v", err)
		return scheduler.CreateEventOutput{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.PrimaryCalendarID
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:    calendarID,
		Summary:       input.Summary,
		Description:   input.Description,
		Location:      input.Location,
		StartDateTime: uc.resolveDateTime(input.StartDateTime),
		EndDateTime:   uc.resolveDateTime(input.EndDateTime),
		Timezone:      uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent: calendar %s insert failed: %v", calendarID, err)
		return scheduler.CreateEventOutput{Success: false, Error: err.Error()}, nil
	}

	uc.l.Infof(ctx, "uc.CreateEvent: created event %s on %s: %s", created.ID, calendarID, created.HtmlLink)

	return scheduler.CreateEventOutput{
		Success: true,
		EventID: created.ID,
		Link:    created.HtmlLink,
	}, nil
}

// validateCreateInput rejects incomplete requests before any remote call.
func validateCreateInput(input scheduler.CreateEventInput) error {
	if input.Summary == "" {
		return scheduler.ErrMissingSummary
	}
	if input.StartDateTime == "" {
		return scheduler.ErrMissingStartTime
	}
	if input.EndDateTime == "" {
		return scheduler.ErrMissingEndTime
	}
	return nil
}
