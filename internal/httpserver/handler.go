package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analysisHTTP "gdd-roadmap/internal/analysis/delivery/http"
)

const (
	environmentProduction = "production"
	apiPrefix             = "/api/v1"
	sessionsPath          = "/sessions"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	// Access logs are left to the proxy in production.
	if srv.environment != environmentProduction {
		srv.gin.Use(gin.Logger())
	}
	srv.l.Infof(ctx, "HTTP environment: %s", srv.environment)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	sessions := srv.gin.Group(apiPrefix + sessionsPath)
	analysisHTTP.RegisterRoutes(sessions, srv.analysisHandler, srv.mw)
	srv.l.Infof(ctx, "Analysis routes registered at %s%s", apiPrefix, sessionsPath)

	return nil
}
