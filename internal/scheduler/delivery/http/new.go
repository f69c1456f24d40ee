package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Availability(c *gin.Context)
	Now(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduler.UseCase
}

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
