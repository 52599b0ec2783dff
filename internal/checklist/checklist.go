// Package checklist writes a task board as a markdown checklist and reads completion back from it,
// so progress can be tracked in any editor between CLI runs.
package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"gdd-roadmap/internal/analysis"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// "  - [x] Task name" -> ["  ", "x", "Task name"]
	CheckboxPattern = `^(\s*)- \[([ xX])\] (.+)$`
	HeadingPattern  = `^#{1,6}\s+(.+?)\s*$`
)

var (
	checkboxRe   = regexp.MustCompile(CheckboxPattern)
	headingRe    = regexp.MustCompile(HeadingPattern)
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
	progressRe   = regexp.MustCompile(`\s*\(\d+/\d+\)$`)
)

// sanitize drops code blocks so example checkboxes inside them are not counted.
func sanitize(content string) string {
	s := fencedCodeRe.ReplaceAllString(content, "")
	return inlineCodeRe.ReplaceAllString(s, "")
}

// Format renders the board as markdown: one heading per category and one checkbox per task.
func Format(title string, b analysis.Board) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}
	for i, c := range b.Categories {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s (%d/%d)\n\n", c.Title, c.Completed, c.Total)
		for _, t := range c.Tasks {
			box := CheckboxUnchecked
			if t.Completed {
				box = CheckboxChecked
			}
			fmt.Fprintf(&sb, "%s %s (%s)\n", box, t.Text, t.Priority)
		}
	}
	return sb.String()
}

// Parse extracts all checkboxes, tagging each with the heading it sits under.
func Parse(content string) []Checkbox {
	var (
		out     []Checkbox
		section string
	)
	for _, line := range strings.Split(sanitize(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if m := headingRe.FindStringSubmatch(line); m != nil {
			section = progressRe.ReplaceAllString(m[1], "")
			continue
		}
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, Checkbox{
			Section: section,
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return out
}

// GetStats counts checked and pending boxes.
func GetStats(content string) Stats {
	boxes := Parse(content)
	st := Stats{Total: len(boxes)}
	for _, cb := range boxes {
		if cb.Checked {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.Percent = st.Completed * 100 / st.Total
	}
	return st
}

// States maps the checkboxes of a checklist back onto the board's task addresses.
// A section is matched to a category by title or key (case-insensitive); inside a section the
// n-th checkbox is task n. Boxes beyond the category's task count are ignored.
func States(b analysis.Board, content string) map[analysis.TaskRef]bool {
	bySection := make(map[string][]Checkbox)
	for _, cb := range Parse(content) {
		if cb.Indent != "" {
			continue
		}
		key := strings.ToLower(cb.Section)
		bySection[key] = append(bySection[key], cb)
	}

	states := make(map[analysis.TaskRef]bool)
	for _, c := range b.Categories {
		boxes, ok := bySection[strings.ToLower(c.Title)]
		if !ok {
			boxes = bySection[strings.ToLower(c.Key)]
		}
		for i, cb := range boxes {
			if i >= len(c.Tasks) {
				break
			}
			if cb.Checked {
				states[analysis.TaskRef{Category: c.Key, Index: i}] = true
			}
		}
	}
	return states
}

// IsFullyCompleted reports whether a checklist has boxes and all of them are checked.
func IsFullyCompleted(content string) bool {
	st := GetStats(content)
	return st.Total > 0 && st.Pending == 0
}
