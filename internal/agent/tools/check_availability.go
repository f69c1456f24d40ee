package tools

import (
	"context"

	"github.com/AI-Agents-Org/scheduler-agent/internal/agent"
	"github.com/AI-Agents-Org/scheduler-agent/internal/model"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	pkgLog "github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

type CheckAvailabilityTool struct {
	uc scheduler.UseCase
	l  pkgLog.Logger
}

func NewCheckAvailabilityTool(uc scheduler.UseCase, l pkgLog.Logger) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{
		uc: uc,
		l:  l,
	}
}

func (t *CheckAvailabilityTool) Name() string {
	return "check_availability"
}

func (t *CheckAvailabilityTool) Description() string {
	return "Checks whether a proposed time slot is free across the connected calendars and lists any conflicting events."
}

func (t *CheckAvailabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"startDateTime": map[string]interface{}{
				"type":        "string",
				"description": "Slot start as 'YYYY-MM-DDTHH:MM:SS' or natural language",
			},
			"endDateTime": map[string]interface{}{
				"type":        "string",
				"description": "Slot end as 'YYYY-MM-DDTHH:MM:SS' or natural language",
			},
		},
		"required": []string{"startDateTime", "endDateTime"},
	}
}

type CheckAvailabilityInput struct {
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}

type CheckAvailabilityOutput struct {
	Success   bool                    `json:"success"`
	Available bool                    `json:"available"`
	Conflicts []model.NormalizedEvent `json:"conflicts"`
	Error     string                  `json:"error,omitempty"`
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CheckAvailabilityInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "check_availability: %s → %s", input.StartDateTime, input.EndDateTime)

	out, err := t.uc.CheckAvailability(ctx, scheduler.CheckAvailabilityInput{
		StartDateTime: input.StartDateTime,
		EndDateTime:   input.EndDateTime,
	})
	if err != nil {
		t.l.Warnf(ctx, "check_availability: %v", err)
		return CheckAvailabilityOutput{Success: false, Error: err.Error()}, nil
	}

	conflicts := out.Conflicts
	if conflicts == nil {
		conflicts = []model.NormalizedEvent{}
	}

	return CheckAvailabilityOutput{
		Success:   out.Success,
		Available: out.Available,
		Conflicts: conflicts,
		Error:     out.Error,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*CheckAvailabilityTool)(nil)
