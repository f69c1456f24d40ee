package middleware

import (
	"github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
