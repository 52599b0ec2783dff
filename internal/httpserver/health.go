package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdd-roadmap/pkg/response"
)

const (
	HealthMessage = "GDD roadmap API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "gdd-roadmap"
)

type statusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newStatusResp(status string) statusResp {
	return statusResp{Status: status, Message: HealthMessage, Version: HealthVersion, Service: ServiceName}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newStatusResp("healthy"))
}

// readyCheck answers 503 until the analysis store can be reached.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp}
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if srv.ready != nil {
		if err := srv.ready(ctx); err != nil {
			srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
			})
			return
		}
	}
	response.OK(c, newStatusResp("ready"))
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newStatusResp("alive"))
}
