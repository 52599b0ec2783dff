package repository

import (
	"time"

	"gdd-roadmap/internal/model"
)

// SaveAnalysisOptions holds the parameters for storing an analysis.
type SaveAnalysisOptions struct {
	ID        string
	SessionID string
	FileName  string
	Provider  string
	Model     string
	Schema    model.ProjectSchema
	CreatedAt time.Time
}

// SetTaskStateOptions holds the parameters for flagging one task.
type SetTaskStateOptions struct {
	SessionID string
	Category  string
	Index     int
	Completed bool
	UpdatedAt time.Time
}
