package datemath

import "time"

// QuarterRange is the calendar window of a run of project quarters.
// End is exclusive.
type QuarterRange struct {
	FirstQuarter int
	LastQuarter  int
	Start        time.Time
	End          time.Time
}
