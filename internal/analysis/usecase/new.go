package usecase

import (
	"time"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository"
	"gdd-roadmap/pkg/datemath"
	"gdd-roadmap/pkg/gcalendar"
	"gdd-roadmap/pkg/llmprovider"
	pkgLog "gdd-roadmap/pkg/log"
)

// Config tunes the analysis use case.
type Config struct {
	Temperature     float64
	MaxOutputTokens int
	StateTTL        time.Duration
	MaxUploadBytes  int64
	CalendarID      string
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	repo     repository.Repository
	calendar gcalendar.Calendar
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new analysis UseCase instance. calendar may be nil to disable calendar sync.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	repo repository.Repository,
	calendar gcalendar.Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) analysis.UseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		calendar: calendar,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
