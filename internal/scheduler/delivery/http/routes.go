package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are rate limited per client by convention.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sched := rg.Group("/scheduler")
	{
		sched.GET("/events", mw.RateLimit(), h.List)
		sched.POST("/events", mw.RateLimit(), h.Create)
		sched.POST("/availability", mw.RateLimit(), h.Availability)
		sched.GET("/now", mw.RateLimit(), h.Now)
	}
}
