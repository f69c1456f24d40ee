package model

// NormalizedEvent is the common event shape produced after reconciling the
// date-only and date-time fields of a remote calendar event. InitialDate and
// FinalDate carry the precise timestamp when the source event is timed, or
// the YYYY-MM-DD date when it is all-day.
type NormalizedEvent struct {
	InitialDate string `json:"initialDate"`
	FinalDate   string `json:"finalDate"`
	Summary     string `json:"summary"`
	CalendarID  string `json:"calendarId"`
}

// CalendarEvents is the aggregation result for one calendar source. A
// non-empty Error means the source's request failed, which is distinct from
// the source returning zero events.
type CalendarEvents struct {
	CalendarID string            `json:"calendarId"`
	Events     []NormalizedEvent `json:"events"`
	Error      string            `json:"error,omitempty"`
}
