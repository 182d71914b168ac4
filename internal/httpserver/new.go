package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	checklistHTTP "jumpnjoy-ops/internal/checklist/delivery/http"
	"jumpnjoy-ops/internal/middleware"
	"jumpnjoy-ops/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting middleware (identity, request id, rate limiting)
	mw middleware.Middleware

	// Checklist domain: one engine per portal resource, keyed by URL segment
	checklistResources map[string]checklistHTTP.Resource
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChecklistResources map[string]checklistHTTP.Resource
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		mw:                 cfg.Middleware,
		checklistResources: cfg.ChecklistResources,
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
	if len(srv.checklistResources) == 0 {
		return errors.New("at least one checklist resource is required")
	}
	return nil
}
