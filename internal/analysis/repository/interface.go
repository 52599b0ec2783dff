package repository

import (
	"context"
	"time"

	"gdd-roadmap/internal/analysis"
)

// Repository is the composed interface for the analysis domain data store.
type Repository interface {
	SessionRepository
	AnalysisRepository
	TaskStateRepository
}

// SessionRepository stores analysis sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, id string, createdAt time.Time) error
	// SessionExists reports whether id was created and not deleted.
	SessionExists(ctx context.Context, id string) (bool, error)
}

// AnalysisRepository stores the current analysis of each session.
type AnalysisRepository interface {
	// SaveAnalysis replaces the session's analysis and clears its task states.
	SaveAnalysis(ctx context.Context, opt SaveAnalysisOptions) (analysis.Analysis, error)
	// GetAnalysis returns a zero-value Analysis (ID == "") when the session has none.
	GetAnalysis(ctx context.Context, sessionID string) (analysis.Analysis, error)
	// DeleteAnalysis removes the analysis and its task states.
	DeleteAnalysis(ctx context.Context, sessionID string) error
}

// TaskStateRepository stores per-task completion flags.
type TaskStateRepository interface {
	ListTaskStates(ctx context.Context, sessionID string) (map[analysis.TaskRef]bool, error)
	SetTaskState(ctx context.Context, opt SetTaskStateOptions) error
}
