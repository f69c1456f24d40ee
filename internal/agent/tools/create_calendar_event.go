package tools

import (
	"context"

	"github.com/AI-Agents-Org/scheduler-agent/internal/agent"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	pkgLog "github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

type CreateCalendarEventTool struct {
	uc scheduler.UseCase
	l  pkgLog.Logger
}

func NewCreateCalendarEventTool(uc scheduler.UseCase, l pkgLog.Logger) *CreateCalendarEventTool {
	return &CreateCalendarEventTool{
		uc: uc,
		l:  l,
	}
}

func (t *CreateCalendarEventTool) Name() string {
	return "create_calendar_event"
}

func (t *CreateCalendarEventTool) Description() string {
	return "Creates a new event on a calendar. Start and end accept ISO date-times or natural expressions like 'amanhã às 14h'."
}

func (t *CreateCalendarEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"summary": map[string]interface{}{
				"type":        "string",
				"description": "Event title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Event description",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Event location",
			},
			"startDateTime": map[string]interface{}{
				"type":        "string",
				"description": "Start as 'YYYY-MM-DDTHH:MM:SS' or natural language",
			},
			"endDateTime": map[string]interface{}{
				"type":        "string",
				"description": "End as 'YYYY-MM-DDTHH:MM:SS' or natural language",
			},
			"calendarId": map[string]interface{}{
				"type":        "string",
				"description": "Target calendar. Defaults to the primary calendar.",
			},
		},
		"required": []string{"summary", "startDateTime", "endDateTime"},
	}
}

type CreateCalendarEventInput struct {
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	CalendarID    string `json:"calendarId"`
}

type CreateCalendarEventOutput struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId,omitempty"`
	Link    string `json:"link,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (t *CreateCalendarEventTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CreateCalendarEventInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "create_calendar_event: %q %s → %s", input.Summary, input.StartDateTime, input.EndDateTime)

	out, err := t.uc.CreateEvent(ctx, scheduler.CreateEventInput{
		Summary:       input.Summary,
		Description:   input.Description,
		Location:      input.Location,
		StartDateTime: input.StartDateTime,
		EndDateTime:   input.EndDateTime,
		CalendarID:    input.CalendarID,
	})
	if err != nil {
		// Validation failures surface as a payload, not as an escaped error
		t.l.Warnf(ctx, "create_calendar_event: %v", err)
		return CreateCalendarEventOutput{Success: false, Error: err.Error()}, nil
	}

	return CreateCalendarEventOutput{
		Success: out.Success,
		EventID: out.EventID,
		Link:    out.Link,
		Error:   out.Error,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*CreateCalendarEventTool)(nil)
