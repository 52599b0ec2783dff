// Package render prints roadmaps to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

const (
	DefaultTrackWidth = 48
	labelWidth        = 16
	filledCell        = "█"
	emptyCell         = "·"
)

// Printer writes styled output. Colours are dropped when w is not a terminal.
type Printer struct {
	w     io.Writer
	width int
	st    styles

	headingColor *color.Color
	successColor *color.Color
	infoColor    *color.Color
	warnColor    *color.Color
	errorColor   *color.Color
}

// New creates a Printer with a timeline track of width cells.
func New(w io.Writer, width int) *Printer {
	if width <= 0 {
		width = DefaultTrackWidth
	}
	p := &Printer{
		w:            w,
		width:        width,
		st:           newStyles(lipgloss.NewRenderer(w)),
		headingColor: color.New(color.FgMagenta, color.Bold),
		successColor: color.New(color.FgGreen, color.Bold),
		infoColor:    color.New(color.FgCyan),
		warnColor:    color.New(color.FgYellow, color.Bold),
		errorColor:   color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(w) {
		for _, c := range []*color.Color{p.headingColor, p.successColor, p.infoColor, p.warnColor, p.errorColor} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (p *Printer) Heading(format string, args ...any) {
	p.headingColor.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.successColor.Fprintf(p.w, "✔ "+format+"\n", args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.infoColor.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.warnColor.Fprintf(p.w, "! "+format+"\n", args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.errorColor.Fprintf(p.w, "✘ "+format+"\n", args...)
}

// Overview prints the project header.
func (p *Printer) Overview(o model.Overview) {
	var b strings.Builder
	b.WriteString(p.st.title.Render(o.Title.Or("Untitled project")))

	var facts []string
	for _, f := range []struct{ name, value string }{
		{"Genre", o.Genre.String()},
		{"Platform", o.Platform.String()},
		{"Team", o.TeamSize.String()},
		{"Duration", o.EstimatedDuration.String()},
	} {
		if strings.TrimSpace(f.value) != "" {
			facts = append(facts, f.name+": "+f.value)
		}
	}
	if len(facts) > 0 {
		b.WriteString("\n" + p.st.subtitle.Render(strings.Join(facts, " | ")))
	}
	if d := strings.TrimSpace(o.Description.String()); d != "" {
		b.WriteString("\n" + d)
	}
	fmt.Fprintln(p.w, p.st.panel.Render(b.String()))
}

// Timeline prints the quarter header and one bar per row.
func (p *Printer) Timeline(tl timeline.Timeline) {
	p.Heading("Timeline (%d quarters, %d months)", tl.TotalQuarters, tl.DurationMonths)
	fmt.Fprintln(p.w, strings.Repeat(" ", labelWidth)+p.header(tl))

	for _, row := range tl.Rows {
		start, n := cells(row.Span, p.width)
		bar := p.st.track.Render(strings.Repeat(emptyCell, start)) +
			p.st.track.Foreground(barColor(row.Color)).Render(strings.Repeat(filledCell, n)) +
			p.st.track.Render(strings.Repeat(emptyCell, p.width-start-n))

		fmt.Fprintf(p.w, "%s%s %s\n", p.st.label.Render(padLabel(row.Title)), bar, p.st.subtitle.Render(caption(row)))
	}
}

// header spreads the quarter labels over the track.
func (p *Printer) header(tl timeline.Timeline) string {
	line := []rune(strings.Repeat(" ", p.width))
	for i, q := range tl.Quarters {
		pos := i * p.width / max(1, len(tl.Quarters))
		for j, r := range q {
			if pos+j >= len(line) {
				break
			}
			line[pos+j] = r
		}
	}
	return p.st.subtitle.Render(strings.TrimRight(string(line), " "))
}

// Board prints the task board with completion marks.
func (p *Printer) Board(b analysis.Board) {
	p.Heading("Tasks %d/%d (%d%%)", b.Completed, b.Total, b.Percent)
	for _, c := range b.Categories {
		fmt.Fprintf(p.w, "%s %s\n",
			p.st.label.Render(c.Title),
			p.st.subtitle.Render(fmt.Sprintf("%d/%d (%d%%)", c.Completed, c.Total, c.Percent)))
		for _, t := range c.Tasks {
			mark := "[ ]"
			if t.Completed {
				mark = p.st.done.Render("[x]")
			}
			fmt.Fprintf(p.w, "  %s %d. %s %s\n", mark, t.Index, t.Text, p.priority(t.Priority))
		}
	}
}

func (p *Printer) priority(pr model.Priority) string {
	switch pr.OrDefault() {
	case model.PriorityHigh:
		return p.st.high.Render("high")
	case model.PriorityLow:
		return p.st.low.Render("low")
	default:
		return p.st.medium.Render("medium")
	}
}

// cells converts a span in percent into a start cell and a bar length.
func cells(s timeline.Span, width int) (start, n int) {
	start = int(s.StartPercent*float64(width)/100 + 0.5)
	n = int(s.WidthPercent*float64(width)/100 + 0.5)
	if n == 0 && s.WidthPercent > 0 {
		n = 1
	}
	start = min(max(start, 0), width)
	n = min(max(n, 0), width-start)
	return start, n
}

func caption(row timeline.Row) string {
	if row.Source == timeline.SourcePhase {
		return row.Caption
	}
	c := fmt.Sprintf("Q%d-Q%d", row.StartQuarter, row.EndQuarter)
	if row.Source == timeline.SourceHeuristic {
		c += " (estimated)"
	}
	return c
}

func padLabel(s string) string {
	r := []rune(s)
	if len(r) >= labelWidth {
		return string(r[:labelWidth-2]) + "… "
	}
	return s + strings.Repeat(" ", labelWidth-len(r))
}
