package http

import (
	"errors"

	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
)

var errInvalidRequest = errors.New("invalid request")

// mapError translates use-case errors into client-facing errors.
// Validation errors are returned as-is so the client sees the reason;
// anything else is replaced to avoid leaking internals.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrMissingSummary),
		errors.Is(err, scheduler.ErrMissingStartTime),
		errors.Is(err, scheduler.ErrMissingEndTime):
		return err
	default:
		return errInvalidRequest
	}
}
