package timeline

import (
	"gdd-roadmap/internal/model"
	"gdd-roadmap/pkg/datemath"
)

const (
	minPhaseColumns = 4
	phaseGapPercent = 2
)

var categoryTitles = map[string]string{
	"programming": "Programming",
	"art":         "Art",
	"design":      "Design",
	"audio":       "Audio",
	"music":       "Music",
	"qa":          "QA",
}

// CategoryTitle returns the display title of a category key.
func CategoryTitle(key string) string {
	if t, ok := categoryTitles[key]; ok {
		return t
	}
	return key
}

// Build derives the complete timeline of a project: quarter count from the estimated duration,
// header labels, divider positions and one row per category (or per roadmap phase when the
// project has no categories).
func Build(s model.ProjectSchema) Timeline {
	months := datemath.ParseMonths(s.Overview.EstimatedDuration.String())
	total := datemath.TotalQuarters(months)

	tl := Timeline{
		DurationMonths: months,
		TotalQuarters:  total,
		Quarters:       datemath.QuarterLabels(total),
		Dividers:       dividers(total),
	}

	if len(s.Tasks) > 0 {
		tl.Rows = categoryRows(s.Tasks, total)
		return tl
	}
	tl.Rows = phaseRows(s.Roadmap)
	return tl
}

func categoryRows(cs model.Categories, total int) []Row {
	rows := make([]Row, 0, len(cs))
	for i, e := range cs {
		start, end, span, src := place(e.Key, e.Category, i, total)
		rows = append(rows, Row{
			Key:          e.Key,
			Title:        CategoryTitle(e.Key),
			Color:        e.Category.Color.String(),
			Icon:         e.Category.Icon.String(),
			StartQuarter: start,
			EndQuarter:   end,
			Span:         span,
			Source:       src,
		})
	}
	return rows
}

// phaseRows spreads roadmap phases over equal columns, at least four of them.
func phaseRows(phases []model.Phase) []Row {
	column := 100 / float64(max(minPhaseColumns, len(phases)))
	rows := make([]Row, 0, len(phases))
	for i, p := range phases {
		rows = append(rows, Row{
			Key:          p.Phase.Or("Phase"),
			Title:        p.Phase.Or("Phase"),
			Caption:      p.Duration.Or("N/A"),
			StartQuarter: i + 1,
			EndQuarter:   i + 1,
			Span: Span{
				StartPercent: float64(i) * column,
				WidthPercent: column - phaseGapPercent,
			},
			Source: SourcePhase,
		})
	}
	return rows
}

func dividers(total int) []float64 {
	out := make([]float64, 0, total-1)
	for i := 1; i < total; i++ {
		out = append(out, float64(i)/float64(total)*100)
	}
	return out
}
