package datemath

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Parser resolves calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate parses a YYYY-MM-DD date as midnight in the parser's timezone.
// An empty string resolves to the start of the current day.
func (p *Parser) ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return p.startOfDay(now), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// QuarterSpan returns the calendar range covered by quarters first..last (1-based, inclusive)
// of a project starting at start.
func (p *Parser) QuarterSpan(start time.Time, first, last int) QuarterRange {
	if first < 1 {
		first = 1
	}
	if last < first {
		last = first
	}
	base := p.startOfDay(start)
	return QuarterRange{
		FirstQuarter: first,
		LastQuarter:  last,
		Start:        base.AddDate(0, (first-1)*MonthsPerQuarter, 0),
		End:          base.AddDate(0, last*MonthsPerQuarter, 0),
	}
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
