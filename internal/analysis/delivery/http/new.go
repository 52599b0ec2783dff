package http

import (
	"github.com/gin-gonic/gin"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/pkg/log"
)

// Handler is the HTTP delivery of the analysis domain.
type Handler interface {
	CreateSession(c *gin.Context)
	Analyze(c *gin.Context)
	Current(c *gin.Context)
	Reset(c *gin.Context)
	Timeline(c *gin.Context)
	Board(c *gin.Context)
	SetTask(c *gin.Context)
	Export(c *gin.Context)
	SyncCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
