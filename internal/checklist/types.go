package checklist

// Checkbox is one "- [ ]" line of a markdown checklist.
type Checkbox struct {
	Section string // nearest heading above the line, "" when none
	Indent  string
	Checked bool
	Text    string
}

// Stats is the progress of a checklist.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Percent   int
}
