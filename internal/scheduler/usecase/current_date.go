package usecase

import (
	"context"
	"time"

	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
)

// CurrentDate reports the current date and full instant in the configured
// timezone, for callers that need a temporal anchor before resolving
// relative expressions.
func (uc *implUseCase) CurrentDate(ctx context.Context) (scheduler.CurrentDateOutput, error) {
	now := uc.nowFn().In(uc.location)

	return scheduler.CurrentDateOutput{
		Success:      true,
		CurrentDate:  now.Format(dateLayout),
		FullDateTime: now.Format(time.RFC3339),
	}, nil
}
