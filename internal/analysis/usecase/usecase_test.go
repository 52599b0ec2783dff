package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository/sqlite"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/pkg/datemath"
	"gdd-roadmap/pkg/document"
	"gdd-roadmap/pkg/gcalendar"
	"gdd-roadmap/pkg/llmprovider"
	"gdd-roadmap/pkg/log"
)

const sampleAnswer = "Here is the roadmap:\n```json\n" + `{
  "overview": {
    "title": "Star Forge",
    "genre": "Strategy",
    "platform": "PC",
    "teamSize": 5,
    "estimatedDuration": "12 months",
    "description": "Build ships."
  },
  "roadmap": [{"phase": "Pre-production", "duration": "2 months"}],
  "tasks": {
    "programming": {
      "icon": "code", "color": "#3b82f6", "startQuarter": 1, "endQuarter": 4,
      "tasks": [
        {"text": "Core loop", "priority": "high"},
        {"text": "Save system", "priority": "Medium"}
      ]
    },
    "art": {"icon": "palette", "color": "#ec4899", "tasks": [{"text": "Ship sprites"}]},
    "qa": {"tasks": [{"text": "Playtests", "priority": "low"}]}
  }
}` + "\n```"

var baseTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type fakeProvider struct {
	mu      sync.Mutex
	answers []string
	err     error
	prompts []string
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, req.Messages[0].Text())
	if p.err != nil {
		return nil, p.err
	}
	answer := p.answers[0]
	if len(p.answers) > 1 {
		p.answers = p.answers[1:]
	}
	return &llmprovider.Response{
		Content:   llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: answer}}},
		ModelName: "fake-1",
	}, nil
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-1" }

type fakeCalendar struct {
	mu       sync.Mutex
	requests []gcalendar.CreateEventRequest
	err      error
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	c.requests = append(c.requests, req)
	id := fmt.Sprintf("evt-%d", len(c.requests))
	return &gcalendar.Event{ID: id, HtmlLink: "https://calendar.test/" + id}, nil
}

func (c *fakeCalendar) byRow() map[string]gcalendar.CreateEventRequest {
	out := map[string]gcalendar.CreateEventRequest{}
	for _, r := range c.requests {
		out[r.Tags["roadmap_row"]] = r
	}
	return out
}

type fixture struct {
	uc       *implUseCase
	provider *fakeProvider
	calendar *fakeCalendar
}

func newFixture(t *testing.T, answers ...string) *fixture {
	t.Helper()

	l := log.NewNop()
	store, err := sqlite.NewMemory(l)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	provider := &fakeProvider{answers: answers}
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, l)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	cal := &fakeCalendar{}
	uc := New(l, manager, store, cal, parser, Config{
		Temperature:     0.7,
		MaxOutputTokens: 8192,
		StateTTL:        7 * 24 * time.Hour,
		MaxUploadBytes:  document.DefaultMaxSize,
		CalendarID:      "primary",
	}).(*implUseCase)
	uc.now = func() time.Time { return baseTime }

	return &fixture{uc: uc, provider: provider, calendar: cal}
}

func (f *fixture) session(t *testing.T) model.Scope {
	t.Helper()
	sc, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sc.SessionID)
	return sc
}

func (f *fixture) analyze(t *testing.T, sc model.Scope) analysis.AnalysisView {
	t.Helper()
	text := "Star Forge design document.\nPlayers build ships."
	view, err := f.uc.Analyze(context.Background(), sc, analysis.AnalyzeInput{
		FileName: "gdd.md",
		FileSize: int64(len(text)),
		Content:  strings.NewReader(text),
	})
	require.NoError(t, err)
	return view
}

func TestAnalyze(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)

	view := f.analyze(t, sc)

	assert.NotEmpty(t, view.Analysis.ID)
	assert.Equal(t, sc.SessionID, view.Analysis.SessionID)
	assert.Equal(t, "gdd.md", view.Analysis.FileName)
	assert.Equal(t, "fake", view.Analysis.Provider)
	assert.Equal(t, "fake-1", view.Analysis.Model)
	assert.Equal(t, "Star Forge", view.Analysis.Schema.Overview.Title.String())
	assert.Equal(t, "5", view.Analysis.Schema.Overview.TeamSize.String())
	assert.Equal(t, []string{"programming", "art", "qa"}, view.Analysis.Schema.Tasks.Keys())

	assert.Equal(t, 4, view.Timeline.TotalQuarters)
	require.Len(t, view.Timeline.Rows, 3)
	assert.Equal(t, "Programming", view.Timeline.Rows[0].Title)

	assert.Equal(t, 4, view.Board.Total)
	assert.Equal(t, 0, view.Board.Completed)
	assert.Equal(t, model.PriorityMedium, view.Board.Categories[1].Tasks[0].Priority)

	require.Len(t, f.provider.prompts, 1)
	assert.Contains(t, f.provider.prompts[0], "Players build ships.")
}

func TestAnalyze_UnknownSession(t *testing.T) {
	f := newFixture(t, sampleAnswer)

	_, err := f.uc.Analyze(context.Background(), model.Scope{SessionID: "missing"}, analysis.AnalyzeInput{
		FileName: "gdd.txt",
		Content:  strings.NewReader("text"),
	})
	assert.ErrorIs(t, err, analysis.ErrSessionNotFound)
	assert.Empty(t, f.provider.prompts)
}

func TestAnalyze_DocumentErrors(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)

	tests := []struct {
		name  string
		input analysis.AnalyzeInput
		want  error
	}{
		{
			name:  "too large",
			input: analysis.AnalyzeInput{FileName: "gdd.txt", FileSize: document.DefaultMaxSize + 1, Content: strings.NewReader("x")},
			want:  document.ErrFileTooLarge,
		},
		{
			name:  "unsupported",
			input: analysis.AnalyzeInput{FileName: "gdd.pdf", FileSize: 4, Content: strings.NewReader("%PDF")},
			want:  document.ErrUnsupportedType,
		},
		{
			name:  "empty",
			input: analysis.AnalyzeInput{FileName: "gdd.txt", FileSize: 3, Content: strings.NewReader("  \n")},
			want:  document.ErrEmptyDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Analyze(context.Background(), sc, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, f.provider.prompts)
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	f := newFixture(t, "Sorry, I cannot help with that.")
	sc := f.session(t)

	_, err := f.uc.Analyze(context.Background(), sc, analysis.AnalyzeInput{
		FileName: "gdd.txt",
		Content:  strings.NewReader("design"),
	})
	assert.ErrorIs(t, err, analysis.ErrMalformedResponse)
	assert.NotErrorIs(t, err, analysis.ErrProviderUnavailable)

	_, err = f.uc.Current(context.Background(), sc)
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)
}

func TestAnalyze_ProviderUnavailable(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	f.provider.err = errors.New("connection refused")
	sc := f.session(t)

	_, err := f.uc.Analyze(context.Background(), sc, analysis.AnalyzeInput{
		FileName: "gdd.txt",
		Content:  strings.NewReader("design"),
	})
	assert.ErrorIs(t, err, analysis.ErrProviderUnavailable)
	assert.NotErrorIs(t, err, analysis.ErrMalformedResponse)
}

type blockingProvider struct{}

func (blockingProvider) GenerateContent(ctx context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) Name() string  { return "slow" }
func (blockingProvider) Model() string { return "slow-1" }

func TestAnalyze_ProviderChainTimeout(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	f.uc.llm = llmprovider.NewManager([]llmprovider.Provider{blockingProvider{}}, &llmprovider.Config{
		RetryAttempts:   1,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, log.NewNop())
	sc := f.session(t)

	_, err := f.uc.Analyze(context.Background(), sc, analysis.AnalyzeInput{
		FileName: "gdd.txt",
		Content:  strings.NewReader("design"),
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, analysis.ErrProviderUnavailable)
}

func TestAnalyze_CallerCancelled(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	f.uc.llm = llmprovider.NewManager([]llmprovider.Provider{blockingProvider{}}, &llmprovider.Config{RetryAttempts: 1}, log.NewNop())
	sc := f.session(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.uc.Analyze(ctx, sc, analysis.AnalyzeInput{
		FileName: "gdd.txt",
		Content:  strings.NewReader("design"),
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, analysis.ErrProviderUnavailable)
}

func TestCurrent(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)

	_, err := f.uc.Current(context.Background(), sc)
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)

	saved := f.analyze(t, sc)

	got, err := f.uc.Current(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, saved.Analysis.ID, got.Analysis.ID)
	assert.Equal(t, saved.Timeline, got.Timeline)
	assert.Equal(t, saved.Board, got.Board)
}

func TestCurrent_Expired(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	f.uc.now = func() time.Time { return baseTime.Add(7*24*time.Hour + time.Minute) }

	_, err := f.uc.Current(context.Background(), sc)
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)

	// the stale analysis is gone even if the clock goes back
	f.uc.now = func() time.Time { return baseTime }
	_, err = f.uc.Current(context.Background(), sc)
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)
}

func TestReset(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	require.NoError(t, f.uc.Reset(context.Background(), sc))

	_, err := f.uc.Board(context.Background(), sc)
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)

	assert.ErrorIs(t, f.uc.Reset(context.Background(), model.Scope{}), analysis.ErrSessionNotFound)
}

func TestSetTaskCompletion(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)
	ctx := context.Background()

	board, err := f.uc.SetTaskCompletion(ctx, sc, analysis.SetTaskInput{Category: "programming", Index: 0, Completed: true})
	require.NoError(t, err)

	assert.Equal(t, 4, board.Total)
	assert.Equal(t, 1, board.Completed)
	assert.Equal(t, 25, board.Percent)
	assert.Equal(t, 1, board.Categories[0].Completed)
	assert.Equal(t, 50, board.Categories[0].Percent)
	assert.True(t, board.Categories[0].Tasks[0].Completed)
	assert.False(t, board.Categories[0].Tasks[1].Completed)

	board, err = f.uc.SetTaskCompletion(ctx, sc, analysis.SetTaskInput{Category: "programming", Index: 0, Completed: false})
	require.NoError(t, err)
	assert.Equal(t, 0, board.Completed)
	assert.Equal(t, 0, board.Percent)
}

func TestSetTaskCompletion_NotFound(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	for _, in := range []analysis.SetTaskInput{
		{Category: "programming", Index: 2},
		{Category: "programming", Index: -1},
		{Category: "marketing", Index: 0},
	} {
		_, err := f.uc.SetTaskCompletion(context.Background(), sc, in)
		assert.ErrorIs(t, err, analysis.ErrTaskNotFound, "%+v", in)
	}
}

func TestAnalyze_ReplacesProgress(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	_, err := f.uc.SetTaskCompletion(context.Background(), sc, analysis.SetTaskInput{Category: "art", Index: 0, Completed: true})
	require.NoError(t, err)

	view := f.analyze(t, sc)
	assert.Equal(t, 0, view.Board.Completed)
}

func TestNewBoard_Empty(t *testing.T) {
	b := analysis.NewBoard(model.ProjectSchema{}, nil)
	assert.Empty(t, b.Categories)
	assert.Equal(t, 0, b.Percent)
}

func TestExport(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	out, err := f.uc.Export(context.Background(), sc, analysis.ExportJSON)
	require.NoError(t, err)
	assert.Equal(t, "roadmap_Star_Forge.json", out.FileName)
	assert.Equal(t, "application/json", out.ContentType)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Data, &doc))
	assert.Contains(t, doc, "project")
	assert.Contains(t, doc, "roadmap")
	assert.Contains(t, doc, "tasks")
	assert.Contains(t, doc, "exportDate")

	var tasks model.Categories
	require.NoError(t, json.Unmarshal(doc["tasks"], &tasks))
	assert.Equal(t, []string{"programming", "art", "qa"}, tasks.Keys())

	out, err = f.uc.Export(context.Background(), sc, analysis.ExportYAML)
	require.NoError(t, err)
	assert.Equal(t, "roadmap_Star_Forge.yaml", out.FileName)

	var y struct {
		Project struct {
			Title string `yaml:"title"`
		} `yaml:"project"`
	}
	require.NoError(t, yaml.Unmarshal(out.Data, &y))
	assert.Equal(t, "Star Forge", y.Project.Title)

	_, err = f.uc.Export(context.Background(), sc, "xml")
	assert.ErrorIs(t, err, analysis.ErrInvalidExportFormat)
}

func TestExportFileName(t *testing.T) {
	tests := map[string]string{
		"Star Forge":        "roadmap_Star_Forge.json",
		"  A \t  B  ":       "roadmap_A_B.json",
		"":                  "roadmap_project.json",
		"Dungeons/Dragons?": "roadmap_DungeonsDragons.json",
	}
	for title, want := range tests {
		assert.Equal(t, want, exportFileName(title, analysis.ExportJSON), title)
	}
}

func TestSyncCalendar(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	f.analyze(t, sc)

	out, err := f.uc.SyncCalendar(context.Background(), sc, analysis.CalendarInput{StartDate: "2025-01-01"})
	require.NoError(t, err)

	assert.Equal(t, "primary", out.CalendarID)
	require.Len(t, out.Events, 3)
	assert.Equal(t, "programming", out.Events[0].RowKey)
	assert.Equal(t, "art", out.Events[1].RowKey)
	assert.Equal(t, "qa", out.Events[2].RowKey)

	reqs := f.calendar.byRow()
	require.Len(t, reqs, 3)

	prog := reqs["programming"]
	assert.True(t, prog.AllDay)
	assert.Equal(t, "Star Forge: Programming", prog.Summary)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), prog.StartTime)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), prog.EndTime)
	assert.Equal(t, "primary", prog.CalendarID)
	assert.NotEmpty(t, prog.Tags["roadmap_analysis"])
}

func TestSyncCalendar_Errors(t *testing.T) {
	f := newFixture(t, sampleAnswer)
	sc := f.session(t)
	ctx := context.Background()

	_, err := f.uc.SyncCalendar(ctx, sc, analysis.CalendarInput{StartDate: "01/02/2025"})
	assert.ErrorIs(t, err, analysis.ErrInvalidStartDate)

	_, err = f.uc.SyncCalendar(ctx, sc, analysis.CalendarInput{})
	assert.ErrorIs(t, err, analysis.ErrAnalysisNotFound)

	f.analyze(t, sc)
	f.calendar.err = errors.New("quota exceeded")
	_, err = f.uc.SyncCalendar(ctx, sc, analysis.CalendarInput{CalendarID: "team"})
	assert.ErrorContains(t, err, "quota exceeded")

	f.uc.calendar = nil
	_, err = f.uc.SyncCalendar(ctx, sc, analysis.CalendarInput{})
	assert.ErrorIs(t, err, analysis.ErrCalendarDisabled)
}
