package analysis

import (
	"context"

	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

// UseCase defines the business logic of the roadmap analysis domain.
type UseCase interface {
	// CreateSession opens a new analysis session.
	CreateSession(ctx context.Context) (model.Scope, error)

	// Analyze reads a design document, asks the language model for a roadmap and makes it the
	// session's current analysis.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalysisView, error)

	// Current restores the session's saved analysis.
	Current(ctx context.Context, sc model.Scope) (AnalysisView, error)

	// Reset forgets the session's analysis and task progress.
	Reset(ctx context.Context, sc model.Scope) error

	Timeline(ctx context.Context, sc model.Scope) (timeline.Timeline, error)
	Board(ctx context.Context, sc model.Scope) (Board, error)
	SetTaskCompletion(ctx context.Context, sc model.Scope, input SetTaskInput) (Board, error)

	// Export renders the current analysis as a downloadable document.
	Export(ctx context.Context, sc model.Scope, format ExportFormat) (ExportOutput, error)

	// SyncCalendar publishes one calendar event per timeline row.
	SyncCalendar(ctx context.Context, sc model.Scope, input CalendarInput) (CalendarOutput, error)
}
