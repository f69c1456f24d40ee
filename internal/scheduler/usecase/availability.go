package usecase

import (
	"context"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/datemath"
)

// CheckAvailability aggregates the day containing the proposed slot and
// reports every existing event overlapping it. All-day events conflict with
// any slot on their day. A source that fails its request cannot prove
// availability, so its failure is surfaced in the output error while the
// remaining sources still contribute conflicts.
func (uc *implUseCase) CheckAvailability(ctx context.Context, input scheduler.CheckAvailabilityInput) (scheduler.CheckAvailabilityOutput, error) {
	if input.StartDateTime == "" {
		return scheduler.CheckAvailabilityOutput{}, scheduler.ErrMissingStartTime
	}
	if input.EndDateTime == "" {
		return scheduler.CheckAvailabilityOutput{}, scheduler.ErrMissingEndTime
	}

	slotStart, err := uc.resolveInstant(input.StartDateTime)
	if err != nil {
		return scheduler.CheckAvailabilityOutput{Success: false, Error: err.Error()}, nil
	}
	slotEnd, err := uc.resolveInstant(input.EndDateTime)
	if err != nil {
		return scheduler.CheckAvailabilityOutput{Success: false, Error: err.Error()}, nil
	}

	sources := input.CalendarIDs
	if len(sources) == 0 {
		sources = uc.cfg.CalendarIDs
	}

	day := slotStart.In(uc.location)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.location)
	window := datemath.Window{Start: dayStart, End: dayStart.AddDate(0, 0, 1)}

	calendars := uc.listAcross(ctx, window, sources, 0)

	var conflicts []model.NormalizedEvent
	var sourceErr string
	for _, cal := range calendars {
		if cal.Error != "" {
			uc.l.Warnf(ctx, "uc.CheckAvailability: calendar %s failed: %s", cal.CalendarID, cal.Error)
			sourceErr = cal.Error
			continue
		}
		for _, evt := range cal.Events {
			if uc.overlapsSlot(evt, slotStart, slotEnd) {
				conflicts = append(conflicts, evt)
			}
		}
	}

	return scheduler.CheckAvailabilityOutput{
		Success:   true,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
		Error:     sourceErr,
	}, nil
}

// overlapsSlot reports whether a normalized event intersects the half-open
// interval [slotStart, slotEnd). All-day boundaries parse to local midnight
// and the source's end date is already exclusive, so the same comparison
// covers both variants.
func (uc *implUseCase) overlapsSlot(evt model.NormalizedEvent, slotStart, slotEnd time.Time) bool {
	evtStart, _, err := uc.parseEventTime(evt.InitialDate)
	if err != nil {
		return false
	}
	evtEnd, _, err := uc.parseEventTime(evt.FinalDate)
	if err != nil {
		return false
	}

	return evtStart.Before(slotEnd) && slotStart.Before(evtEnd)
}
