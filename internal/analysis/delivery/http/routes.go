package http

import (
	"github.com/gin-gonic/gin"

	"gdd-roadmap/internal/middleware"
)

// RegisterRoutes maps the session routes. Analysis runs are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", h.CreateSession)

	s := rg.Group("/:session_id")
	{
		s.POST("/analysis", mw.RateLimit(), h.Analyze)
		s.GET("/analysis", h.Current)
		s.DELETE("/analysis", h.Reset)
		s.GET("/timeline", h.Timeline)
		s.GET("/board", h.Board)
		s.PUT("/tasks/:category/:index", h.SetTask)
		s.GET("/export", h.Export)
		s.POST("/calendar", mw.RateLimit(), h.SyncCalendar)
	}
}
