package timeline_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

func TestBuild_Categories(t *testing.T) {
	var s model.ProjectSchema
	require.NoError(t, json.Unmarshal([]byte(`{
		"overview": {"estimatedDuration": "2 anos"},
		"tasks": {
			"design": {"color": "#10b981", "startQuarter": 1, "endQuarter": 3, "tasks": []},
			"audio": {"tasks": [{"text": "Compose theme"}]}
		}
	}`), &s))

	tl := timeline.Build(s)

	assert.Equal(t, 24, tl.DurationMonths)
	assert.Equal(t, 8, tl.TotalQuarters)
	assert.Len(t, tl.Quarters, 8)
	assert.Equal(t, "Y2Q4", tl.Quarters[7])
	assert.Len(t, tl.Dividers, 7)
	assert.Equal(t, 12.5, tl.Dividers[0])

	require.Len(t, tl.Rows, 2)
	assert.Equal(t, "design", tl.Rows[0].Key)
	assert.Equal(t, "Design", tl.Rows[0].Title)
	assert.Equal(t, "#10b981", tl.Rows[0].Color)
	assert.Equal(t, timeline.SourceAI, tl.Rows[0].Source)
	assert.Equal(t, 3, tl.Rows[0].EndQuarter)
	assert.Equal(t, timeline.Span{StartPercent: 0, WidthPercent: 37.5}, tl.Rows[0].Span)

	// audio on 8 quarters: starts at quarter 4 for 5 quarters
	assert.Equal(t, timeline.SourceHeuristic, tl.Rows[1].Source)
	assert.Equal(t, 4, tl.Rows[1].StartQuarter)
	assert.Equal(t, 8, tl.Rows[1].EndQuarter)
	assert.Equal(t, timeline.Span{StartPercent: 37.5, WidthPercent: 62.5}, tl.Rows[1].Span)
}

func TestBuild_DefaultsToTwelveMonths(t *testing.T) {
	tl := timeline.Build(model.ProjectSchema{})
	assert.Equal(t, 12, tl.DurationMonths)
	assert.Equal(t, 4, tl.TotalQuarters)
	assert.Empty(t, tl.Rows)
}

func TestBuild_RoadmapPhasesFallback(t *testing.T) {
	s := model.ProjectSchema{Roadmap: []model.Phase{
		{Phase: "Pre-production", Duration: "3 months"},
		{Duration: ""},
	}}

	tl := timeline.Build(s)
	require.Len(t, tl.Rows, 2)
	assert.Equal(t, "Pre-production", tl.Rows[0].Title)
	assert.Equal(t, timeline.Span{StartPercent: 0, WidthPercent: 23}, tl.Rows[0].Span)
	assert.Equal(t, "Phase", tl.Rows[1].Title)
	assert.Equal(t, "N/A", tl.Rows[1].Caption)
	assert.Equal(t, timeline.Span{StartPercent: 25, WidthPercent: 23}, tl.Rows[1].Span)
	assert.Equal(t, timeline.SourcePhase, tl.Rows[1].Source)
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Programming", timeline.CategoryTitle("programming"))
	assert.Equal(t, "narrative", timeline.CategoryTitle("narrative"))
}
