package gcalendar

import "time"

// EventTime is the start or end of a remote event. Exactly one of DateTime
// (RFC3339, timed events) or Date (YYYY-MM-DD, all-day events) is set.
type EventTime struct {
	DateTime string
	Date     string
}

// AllDay reports whether this is a date-only (all-day) boundary.
func (t EventTime) AllDay() bool {
	return t.DateTime == "" && t.Date != ""
}

// Value returns the precise timestamp when present, otherwise the date-only field.
func (t EventTime) Value() string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

// Event is the raw representation of one Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	Location string
	HtmlLink string
	Start    EventTime
	End      EventTime
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
// StartDateTime/EndDateTime are ISO date-time strings sent to the API as
// given; Timezone names the IANA zone they are interpreted in.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Description   string
	Location      string
	StartDateTime string
	EndDateTime   string
	Timezone      string // e.g. "America/Sao_Paulo"
}
