package datemath

import (
	"errors"
	"time"
)

// ErrUnresolvedExpression is returned when a date expression matches no
// recognized keyword and is not a YYYY-MM-DD date. Callers must not fall
// back to an unbounded query window on this error.
var ErrUnresolvedExpression = errors.New("unresolved date expression")

// Window is a half-open interval [Start, End) bounding a calendar query
// to exactly one day. Both bounds are absolute instants.
type Window struct {
	Start time.Time
	End   time.Time
}

// Keywords recognized in date expressions, English and Portuguese.
// "amanha" covers user input typed without the diacritic.
var (
	todayKeywords    = []string{"today", "hoje"}
	tomorrowKeywords = []string{"tomorrow", "amanhã", "amanha"}
)
