package http

import (
	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
)

// --- Request DTOs ---

type listReq struct {
	SpecificDate string `form:"specificDate"`
	MaxResults   int64  `form:"maxResults"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() scheduler.ListEventsInput {
	return scheduler.ListEventsInput{
		SpecificDate: r.SpecificDate,
		MaxResults:   r.MaxResults,
	}
}

// ---

type createReq struct {
	Summary       string `json:"summary"       binding:"required,min=1,max=255"`
	Description   string `json:"description"   binding:"max=2000"`
	Location      string `json:"location"      binding:"max=500"`
	StartDateTime string `json:"startDateTime" binding:"required"`
	EndDateTime   string `json:"endDateTime"   binding:"required"`
	CalendarID    string `json:"calendarId"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() scheduler.CreateEventInput {
	return scheduler.CreateEventInput{
		Summary:       r.Summary,
		Description:   r.Description,
		Location:      r.Location,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		CalendarID:    r.CalendarID,
	}
}

// ---

type availabilityReq struct {
	StartDateTime string   `json:"startDateTime" binding:"required"`
	EndDateTime   string   `json:"endDateTime"   binding:"required"`
	CalendarIDs   []string `json:"calendarIds"`
}

func (r availabilityReq) validate() error { return nil }

func (r availabilityReq) toInput() scheduler.CheckAvailabilityInput {
	return scheduler.CheckAvailabilityInput{
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		CalendarIDs:   r.CalendarIDs,
	}
}

// --- Response DTOs ---

type eventResp struct {
	InitialDate string `json:"initialDate"`
	FinalDate   string `json:"finalDate"`
	Summary     string `json:"summary"`
	CalendarID  string `json:"calendarId"`
}

func newEventResp(evt model.NormalizedEvent) eventResp {
	return eventResp{
		InitialDate: evt.InitialDate,
		FinalDate:   evt.FinalDate,
		Summary:     evt.Summary,
		CalendarID:  evt.CalendarID,
	}
}

type calendarResp struct {
	CalendarID string      `json:"calendarId"`
	Events     []eventResp `json:"events"`
	Error      string      `json:"error,omitempty"`
}

type listResp struct {
	Calendars []calendarResp `json:"calendars"`
}

func (h *handler) newListResp(out scheduler.ListEventsOutput) listResp {
	calendars := make([]calendarResp, len(out.Calendars))
	for i, cal := range out.Calendars {
		events := make([]eventResp, len(cal.Events))
		for j, evt := range cal.Events {
			events[j] = newEventResp(evt)
		}
		calendars[i] = calendarResp{
			CalendarID: cal.CalendarID,
			Events:     events,
			Error:      cal.Error,
		}
	}
	return listResp{Calendars: calendars}
}

type createResp struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId,omitempty"`
	Link    string `json:"link,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *handler) newCreateResp(out scheduler.CreateEventOutput) createResp {
	return createResp{
		Success: out.Success,
		EventID: out.EventID,
		Link:    out.Link,
		Error:   out.Error,
	}
}

type availabilityResp struct {
	Available bool        `json:"available"`
	Conflicts []eventResp `json:"conflicts"`
	Error     string      `json:"error,omitempty"`
}

func (h *handler) newAvailabilityResp(out scheduler.CheckAvailabilityOutput) availabilityResp {
	conflicts := make([]eventResp, len(out.Conflicts))
	for i, evt := range out.Conflicts {
		conflicts[i] = newEventResp(evt)
	}
	return availabilityResp{
		Available: out.Available,
		Conflicts: conflicts,
		Error:     out.Error,
	}
}

type nowResp struct {
	CurrentDate  string `json:"currentDate"`
	FullDateTime string `json:"fullDateTime"`
}

func (h *handler) newNowResp(out scheduler.CurrentDateOutput) nowResp {
	return nowResp{
		CurrentDate:  out.CurrentDate,
		FullDateTime: out.FullDateTime,
	}
}
