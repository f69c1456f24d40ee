package scheduler

import "github.com/AI-Agents-Org/scheduler-agent/internal/model"

// --- UseCase Inputs ---

type ListEventsInput struct {
	// SpecificDate is a date expression: "today"/"hoje", "tomorrow"/"amanhã"
	// or YYYY-MM-DD. Unresolvable expressions yield empty per-source results
	// without any remote call.
	SpecificDate string
	// MaxResults caps the events returned per calendar; 0 means the
	// configured default.
	MaxResults int64
}

type CreateEventInput struct {
	Summary       string
	Description   string
	Location      string
	StartDateTime string
	EndDateTime   string
	// CalendarID defaults to the configured primary calendar when empty.
	CalendarID string
}

type CheckAvailabilityInput struct {
	StartDateTime string
	EndDateTime   string
	// CalendarIDs defaults to all configured sources when empty.
	CalendarIDs []string
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Success   bool
	Calendars []model.CalendarEvents
}

type CreateEventOutput struct {
	Success bool
	EventID string
	Link    string
	Error   string
}

type CheckAvailabilityOutput struct {
	Success   bool
	Available bool
	Conflicts []model.NormalizedEvent
	Error     string
}

type CurrentDateOutput struct {
	Success      bool
	CurrentDate  string
	FullDateTime string
}
