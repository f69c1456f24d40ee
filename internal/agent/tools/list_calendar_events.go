package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AI-Agents-Org/scheduler-agent/internal/agent"
	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	pkgLog "github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

type ListCalendarEventsTool struct {
	uc scheduler.UseCase
	l  pkgLog.Logger
}

func NewListCalendarEventsTool(uc scheduler.UseCase, l pkgLog.Logger) *ListCalendarEventsTool {
	return &ListCalendarEventsTool{
		uc: uc,
		l:  l,
	}
}

func (t *ListCalendarEventsTool) Name() string {
	return "list_calendar_events"
}

func (t *ListCalendarEventsTool) Description() string {
	return "Lists events from all connected calendars for a specific date. Useful for consulting agendas and spotting busy days."
}

func (t *ListCalendarEventsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"specificDate": map[string]interface{}{
				"type":        "string",
				"description": "Date to filter events: 'today', 'tomorrow' or 'YYYY-MM-DD'",
			},
			"maxResults": map[string]interface{}{
				"type":        "number",
				"description": "Maximum number of events to return per calendar. Defaults to 7.",
			},
		},
		"required": []string{"specificDate"},
	}
}

type ListCalendarEventsInput struct {
	SpecificDate string `json:"specificDate"`
	MaxResults   int64  `json:"maxResults"`
}

type ListCalendarEventsOutput struct {
	Success   bool                   `json:"success"`
	Calendars []model.CalendarEvents `json:"calendars"`
	Error     string                 `json:"error,omitempty"`
}

func (t *ListCalendarEventsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input ListCalendarEventsInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "list_calendar_events: specificDate=%q maxResults=%d", input.SpecificDate, input.MaxResults)

	out, err := t.uc.ListEvents(ctx, scheduler.ListEventsInput{
		SpecificDate: input.SpecificDate,
		MaxResults:   input.MaxResults,
	})
	if err != nil {
		t.l.Errorf(ctx, "list_calendar_events: %v", err)
		return ListCalendarEventsOutput{Success: false, Error: err.Error()}, nil
	}

	return ListCalendarEventsOutput{
		Success:   out.Success,
		Calendars: out.Calendars,
	}, nil
}

// decodeParams round-trips the loosely typed tool parameters through JSON
// into a typed input struct.
func decodeParams(params map[string]interface{}, target interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

// Verify interface compliance
var _ agent.Tool = (*ListCalendarEventsTool)(nil)
