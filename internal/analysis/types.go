package analysis

import (
	"io"
	"time"

	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

// --- Analysis Domain Model ---

// Analysis is a saved model answer for one session.
type Analysis struct {
	ID        string
	SessionID string
	FileName  string
	Provider  string
	Model     string
	Schema    model.ProjectSchema
	CreatedAt time.Time
}

// TaskRef addresses a task by category key and position inside the category.
type TaskRef struct {
	Category string
	Index    int
}

// Board is the kanban view of an analysis with completion progress.
type Board struct {
	Categories []BoardCategory
	Total      int
	Completed  int
	Percent    int
}

type BoardCategory struct {
	Key       string
	Title     string
	Icon      string
	Color     string
	Tasks     []BoardTask
	Total     int
	Completed int
	Percent   int
}

type BoardTask struct {
	Index     int
	Text      string
	Priority  model.Priority
	Completed bool
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	FileName string
	FileSize int64
	Content  io.Reader
}

type SetTaskInput struct {
	Category  string
	Index     int
	Completed bool
}

// ExportFormat selects the serialization of an export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// CalendarInput is the request to publish the timeline to a calendar.
// StartDate is YYYY-MM-DD; empty means today.
type CalendarInput struct {
	StartDate  string
	CalendarID string
}

// --- UseCase Outputs ---

// AnalysisView bundles an analysis with its derived views.
type AnalysisView struct {
	Analysis Analysis
	Timeline timeline.Timeline
	Board    Board
}

// ExportDocument is the exported payload. Field names are the camelCase download format, which
// the render command reads back.
type ExportDocument struct {
	Project    model.Overview   `json:"project" yaml:"project"`
	Roadmap    []model.Phase    `json:"roadmap" yaml:"roadmap"`
	Tasks      model.Categories `json:"tasks" yaml:"tasks"`
	ExportDate time.Time        `json:"exportDate" yaml:"exportDate"`
}

type ExportOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CalendarEvent struct {
	RowKey  string
	Title   string
	EventID string
	Link    string
	Start   time.Time
	End     time.Time
}

type CalendarOutput struct {
	CalendarID string
	Events     []CalendarEvent
}
