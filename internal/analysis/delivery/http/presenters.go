package http

import (
	"io"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
	"gdd-roadmap/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	FileName string
	FileSize int64
	Content  io.ReadCloser
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		FileName: r.FileName,
		FileSize: r.FileSize,
		Content:  r.Content,
	}
}

// ---

type setTaskReq struct {
	Category  string `json:"-"`
	Index     int    `json:"-"`
	Completed *bool  `json:"completed"`
}

func (r setTaskReq) validate() error {
	if r.Completed == nil {
		return errMissingFlag
	}
	return nil
}

func (r setTaskReq) toInput() analysis.SetTaskInput {
	return analysis.SetTaskInput{
		Category:  r.Category,
		Index:     r.Index,
		Completed: *r.Completed,
	}
}

// ---

type exportReq struct {
	Format string `form:"format"`
}

func (r exportReq) toFormat() analysis.ExportFormat {
	return analysis.ExportFormat(r.Format)
}

// ---

type calendarReq struct {
	StartDate  string `json:"start_date"  example:"2025-01-01"`
	CalendarID string `json:"calendar_id" example:"primary"`
}

func (r calendarReq) toInput() analysis.CalendarInput {
	return analysis.CalendarInput{
		StartDate:  r.StartDate,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string `json:"session_id"`
}

func (h *handler) newSessionResp(sc model.Scope) sessionResp {
	return sessionResp{SessionID: sc.SessionID}
}

type boardTaskResp struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
}

type boardCategoryResp struct {
	Key       string          `json:"key"`
	Title     string          `json:"title"`
	Icon      string          `json:"icon,omitempty"`
	Color     string          `json:"color,omitempty"`
	Tasks     []boardTaskResp `json:"tasks"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Percent   int             `json:"percent"`
}

type boardResp struct {
	Categories []boardCategoryResp `json:"categories"`
	Total      int                 `json:"total"`
	Completed  int                 `json:"completed"`
	Percent    int                 `json:"percent"`
}

func newBoardResp(b analysis.Board) boardResp {
	cats := make([]boardCategoryResp, len(b.Categories))
	for i, c := range b.Categories {
		tasks := make([]boardTaskResp, len(c.Tasks))
		for j, t := range c.Tasks {
			tasks[j] = boardTaskResp{
				Index:     t.Index,
				Text:      t.Text,
				Priority:  string(t.Priority),
				Completed: t.Completed,
			}
		}
		cats[i] = boardCategoryResp{
			Key:       c.Key,
			Title:     c.Title,
			Icon:      c.Icon,
			Color:     c.Color,
			Tasks:     tasks,
			Total:     c.Total,
			Completed: c.Completed,
			Percent:   c.Percent,
		}
	}
	return boardResp{
		Categories: cats,
		Total:      b.Total,
		Completed:  b.Completed,
		Percent:    b.Percent,
	}
}

type analysisResp struct {
	ID        string              `json:"id"`
	SessionID string              `json:"session_id"`
	FileName  string              `json:"file_name"`
	Provider  string              `json:"provider"`
	Model     string              `json:"model"`
	CreatedAt response.DateTime   `json:"created_at"`
	Project   model.ProjectSchema `json:"project"`
	Timeline  timeline.Timeline   `json:"timeline"`
	Board     boardResp           `json:"board"`
}

func (h *handler) newAnalysisResp(v analysis.AnalysisView) analysisResp {
	return analysisResp{
		ID:        v.Analysis.ID,
		SessionID: v.Analysis.SessionID,
		FileName:  v.Analysis.FileName,
		Provider:  v.Analysis.Provider,
		Model:     v.Analysis.Model,
		CreatedAt: response.DateTime(v.Analysis.CreatedAt),
		Project:   v.Analysis.Schema,
		Timeline:  v.Timeline,
		Board:     newBoardResp(v.Board),
	}
}

type calendarEventResp struct {
	RowKey  string        `json:"row_key"`
	Title   string        `json:"title"`
	EventID string        `json:"event_id"`
	Link    string        `json:"link,omitempty"`
	Start   response.Date `json:"start"`
	End     response.Date `json:"end"`
}

type calendarResp struct {
	CalendarID string              `json:"calendar_id"`
	Events     []calendarEventResp `json:"events"`
}

func (h *handler) newCalendarResp(out analysis.CalendarOutput) calendarResp {
	events := make([]calendarEventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = calendarEventResp{
			RowKey:  e.RowKey,
			Title:   e.Title,
			EventID: e.EventID,
			Link:    e.Link,
			Start:   response.Date(e.Start),
			End:     response.Date(e.End),
		}
	}
	return calendarResp{CalendarID: out.CalendarID, Events: events}
}
