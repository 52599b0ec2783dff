package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
)

func sampleBoard(states map[analysis.TaskRef]bool) analysis.Board {
	return analysis.NewBoard(model.ProjectSchema{
		Overview: model.Overview{Title: "Nebula Drift"},
		Tasks: model.Categories{
			{Key: "programming", Category: model.Category{Tasks: []model.Task{
				{Text: "Ship movement", Priority: model.PriorityHigh},
				{Text: "Save system"},
			}}},
			{Key: "art", Category: model.Category{Tasks: []model.Task{
				{Text: "Concept sheets", Priority: model.PriorityLow},
			}}},
		},
	}, states)
}

func TestFormat(t *testing.T) {
	b := sampleBoard(map[analysis.TaskRef]bool{{Category: "programming", Index: 1}: true})

	got := Format("Nebula Drift", b)

	want := "# Nebula Drift\n\n" +
		"## Programming (1/2)\n\n" +
		"- [ ] Ship movement (high)\n" +
		"- [x] Save system (medium)\n" +
		"\n## Art (0/1)\n\n" +
		"- [ ] Concept sheets (low)\n"
	assert.Equal(t, want, got)
}

func TestParse(t *testing.T) {
	content := "## Art (0/1)\n" +
		"- [X] Concept sheets\n" +
		"  - [ ] nested\n" +
		"```\n- [x] inside code\n```\n" +
		"plain text\n"

	boxes := Parse(content)

	require.Len(t, boxes, 2)
	assert.Equal(t, Checkbox{Section: "Art", Checked: true, Text: "Concept sheets"}, boxes[0])
	assert.Equal(t, "  ", boxes[1].Indent)
	assert.False(t, boxes[1].Checked)
}

func TestGetStats(t *testing.T) {
	st := GetStats("- [x] a\n- [ ] b\n- [x] c\n- [ ] d\n")
	assert.Equal(t, Stats{Total: 4, Completed: 2, Pending: 2, Percent: 50}, st)

	assert.Equal(t, Stats{}, GetStats("no boxes here"))
}

func TestStates_RoundTrip(t *testing.T) {
	want := map[analysis.TaskRef]bool{
		{Category: "programming", Index: 0}: true,
		{Category: "art", Index: 0}:         true,
	}
	md := Format("", sampleBoard(want))

	got := States(sampleBoard(nil), md)

	assert.Equal(t, want, got)
}

func TestStates_MatchesKeyAndIgnoresExtraBoxes(t *testing.T) {
	md := "## programming\n- [ ] one\n- [x] two\n- [x] three\n\n## Unknown\n- [x] lost\n"

	got := States(sampleBoard(nil), md)

	assert.Equal(t, map[analysis.TaskRef]bool{{Category: "programming", Index: 1}: true}, got)
}

func TestIsFullyCompleted(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"all checked", "- [x] a\n- [X] b", true},
		{"one open", "- [x] a\n- [ ] b", false},
		{"no boxes", "# title", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFullyCompleted(tt.content))
		})
	}
}
