package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/internal/scheduler"
	"github.com/AI-Agents-Org/scheduler-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Scheduler domain
	schedulerUC scheduler.UseCase

	// Rate limiting
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Scheduler domain
	SchedulerUC scheduler.UseCase

	// Rate limiting
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		schedulerUC:     cfg.SchedulerUC,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulerUC == nil {
		return errors.New("scheduler use case is required")
	}
	return nil
}

// Run maps handlers and starts listening on the configured port.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
