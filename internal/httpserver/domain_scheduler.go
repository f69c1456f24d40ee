package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/middleware"
	schedHTTP "github.com/AI-Agents-Org/scheduler-agent/internal/scheduler/delivery/http"
)

// setupSchedulerDomain wires the scheduler use case into HTTP routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (or inject it via Config when it is shared)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupSchedulerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := schedHTTP.New(srv.l, srv.schedulerUC)

	// Registers /api/v1/scheduler/*
	schedHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduler domain registered")
	return nil
}
