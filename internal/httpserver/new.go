package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	analysisHTTP "gdd-roadmap/internal/analysis/delivery/http"
	"gdd-roadmap/internal/middleware"
	"gdd-roadmap/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Readiness probe, usually a database ping
	ready func(ctx context.Context) error

	// Analysis domain
	mw              middleware.Middleware
	analysisHandler analysisHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// TrustedProxies feeds gin's SetTrustedProxies. Empty means the socket address is the client.
	TrustedProxies []string

	Ready func(ctx context.Context) error

	// Analysis domain
	Middleware      middleware.Middleware
	AnalysisHandler analysisHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		ready:           cfg.Ready,
		mw:              cfg.Middleware,
		analysisHandler: cfg.AnalysisHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if err := srv.mapHandlers(); err != nil {
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
	if srv.analysisHandler == nil {
		return errors.New("analysis handler is required")
	}
	return nil
}
