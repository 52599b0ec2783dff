package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysisHTTP "gdd-roadmap/internal/analysis/delivery/http"
	"gdd-roadmap/internal/middleware"
	"gdd-roadmap/pkg/log"
)

func newTestServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:          l,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     environmentProduction,
		Ready:           ready,
		Middleware:      middleware.New(l, 0),
		AnalysisHandler: analysisHTTP.New(l, nil),
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "analysis handler is required")

	_, err = New(l, Config{Mode: gin.TestMode, AnalysisHandler: analysisHTTP.New(l, nil)})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}
}

func TestReady_StoreDown(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("database is closed") })

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "database is closed")
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	routes := map[string]bool{}
	for _, r := range srv.gin.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/sessions",
		"POST /api/v1/sessions/:session_id/analysis",
		"GET /api/v1/sessions/:session_id/analysis",
		"DELETE /api/v1/sessions/:session_id/analysis",
		"GET /api/v1/sessions/:session_id/timeline",
		"GET /api/v1/sessions/:session_id/board",
		"PUT /api/v1/sessions/:session_id/tasks/:category/:index",
		"GET /api/v1/sessions/:session_id/export",
		"POST /api/v1/sessions/:session_id/calendar",
		"GET /swagger/*any",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestNew_TrustedProxies(t *testing.T) {
	l := log.NewNop()
	cfg := Config{
		Port:            8080,
		Mode:            gin.TestMode,
		Middleware:      middleware.New(l, 0),
		AnalysisHandler: analysisHTTP.New(l, nil),
		TrustedProxies:  []string{"not-an-ip"},
	}
	_, err := New(l, cfg)
	assert.ErrorContains(t, err, "trusted proxies")

	cfg.TrustedProxies = []string{"10.0.0.0/8"}
	_, err = New(l, cfg)
	assert.NoError(t, err)
}
