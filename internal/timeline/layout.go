// Package timeline lays out roadmap categories on a quarter-gridded track.
//
// Everything here is a pure function of its inputs.
package timeline

import (
	"math"
	"strings"

	"gdd-roadmap/internal/model"
)

// Layout computes the span of every category. Categories with model-provided quarters are
// clamped into [1, totalQuarters]; the rest fall back to a per-kind heuristic.
func Layout(categories model.Categories, totalQuarters int) map[string]Span {
	total := atLeastOne(totalQuarters)
	spans := make(map[string]Span, len(categories))
	for i, e := range categories {
		_, _, span, _ := place(e.Key, e.Category, i, total)
		spans[e.Key] = span
	}
	return spans
}

// place resolves the quarter range and span of one category.
func place(key string, c model.Category, index, total int) (start, end int, span Span, src Source) {
	if s, e, ok := c.Timing(); ok {
		start, end = clamp(s, 1, total), clamp(e, 1, total)
		return start, end, aiSpan(start, end, total), SourceAI
	}

	p := heuristic(key, index, total)
	start = clamp(p.startQuarter, 1, total)
	span = heuristicSpan(start, p.durationQuarters, total)
	end = clamp(start+p.durationQuarters-1, start, total)
	return start, end, span, SourceHeuristic
}

func aiSpan(start, end, total int) Span {
	q := quarterPercent(total)
	width := float64(end-start+1) * q
	if width < 0 {
		width = 0
	}
	return Span{
		StartPercent: float64(start-1) * q,
		WidthPercent: width,
	}
}

func heuristicSpan(start, duration, total int) Span {
	q := quarterPercent(total)
	s := float64(start-1) * q
	return Span{
		StartPercent: s,
		WidthPercent: math.Min(float64(duration)*q, 100-s),
	}
}

// heuristic returns the typical placement of a category kind. Unknown kinds start at their
// positional index.
func heuristic(key string, index, total int) pattern {
	t := float64(total)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "art":
		return pattern{1, max(2, total-1)}
	case "programming":
		return pattern{1, max(3, total)}
	case "design":
		return pattern{1, max(2, ceil(t*0.75))}
	case "audio", "music":
		return pattern{max(2, ceil(t*0.4)), max(2, ceil(t*0.6))}
	case "qa":
		return pattern{max(2, ceil(t*0.6)), max(2, ceil(t*0.4))}
	default:
		return pattern{max(1, index), max(2, ceil(t*0.5))}
	}
}

func quarterPercent(total int) float64 {
	return 100 / float64(total)
}

func ceil(f float64) int {
	return int(math.Ceil(f))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
