package scheduler

import "errors"

var (
	ErrMissingSummary   = errors.New("summary is required")
	ErrMissingStartTime = errors.New("startDateTime is required")
	ErrMissingEndTime   = errors.New("endDateTime is required")
)
