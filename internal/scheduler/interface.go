package scheduler

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ListEvents aggregates events across all configured calendar sources
	// for the day named by the input's date expression.
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)

	// CreateEvent validates and submits one new event to one calendar.
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)

	// CheckAvailability reports whether a proposed time slot collides with
	// existing events on the configured calendars.
	CheckAvailability(ctx context.Context, input CheckAvailabilityInput) (CheckAvailabilityOutput, error)

	// CurrentDate returns the current date and instant in the configured timezone.
	CurrentDate(ctx context.Context) (CurrentDateOutput, error)
}
