package timeline

// Span is the horizontal placement of one bar, in percent of the track width.
type Span struct {
	StartPercent float64 `json:"start_percent"`
	WidthPercent float64 `json:"width_percent"`
}

// Source tells where a row's timing came from.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
	SourcePhase     Source = "phase"
)

// Row is one rendered timeline track.
type Row struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Caption      string `json:"caption,omitempty"`
	Color        string `json:"color,omitempty"`
	Icon         string `json:"icon,omitempty"`
	StartQuarter int    `json:"start_quarter"`
	EndQuarter   int    `json:"end_quarter"`
	Span         Span   `json:"span"`
	Source       Source `json:"source"`
}

// Timeline is the full quarter-gridded view of a project.
type Timeline struct {
	DurationMonths int       `json:"duration_months"`
	TotalQuarters  int       `json:"total_quarters"`
	Quarters       []string  `json:"quarters"`
	Dividers       []float64 `json:"dividers"`
	Rows           []Row     `json:"rows"`
}

// pattern is a fixed start/duration (in quarters) for a well-known category kind.
type pattern struct {
	startQuarter     int
	durationQuarters int
}
