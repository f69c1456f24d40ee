package tools

import (
	"context"

	"github.com/AI-Agents-Org/scheduler-agent/internal/agent"
	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	pkgLog "github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

type GetCurrentDateTool struct {
	uc scheduler.UseCase
	l  pkgLog.Logger
}

func NewGetCurrentDateTool(uc scheduler.UseCase, l pkgLog.Logger) *GetCurrentDateTool {
	return &GetCurrentDateTool{
		uc: uc,
		l:  l,
	}
}

func (t *GetCurrentDateTool) Name() string {
	return "get_current_date"
}

func (t *GetCurrentDateTool) Description() string {
	return "Returns the current date and time so relative expressions like 'amanhã' can be anchored correctly."
}

func (t *GetCurrentDateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

type GetCurrentDateOutput struct {
	Success      bool   `json:"success"`
	CurrentDate  string `json:"currentDate"`
	FullDateTime string `json:"fullDateTime"`
}

func (t *GetCurrentDateTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	out, err := t.uc.CurrentDate(ctx)
	if err != nil {
		t.l.Errorf(ctx, "get_current_date: %v", err)
		return GetCurrentDateOutput{Success: false}, nil
	}

	return GetCurrentDateOutput{
		Success:      out.Success,
		CurrentDate:  out.CurrentDate,
		FullDateTime: out.FullDateTime,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*GetCurrentDateTool)(nil)
