package datemath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMonths is used when a duration is absent or unrecognised.
const DefaultMonths = 12

// MonthsPerQuarter is the size of one scheduling quarter.
const MonthsPerQuarter = 3

var (
	// No leading \b: "18months" has no word boundary between digit and unit.
	monthsToken = regexp.MustCompile(`(months?|meses|mês|mes)\b`)
	yearsToken  = regexp.MustCompile(`(years?|anos?)\b`)
	firstNumber = regexp.MustCompile(`\d+`)
)

// ParseMonths converts a free-text project duration such as "12 meses" or "2 years" into months.
// It never fails: absent or unrecognised text yields DefaultMonths.
func ParseMonths(text string) int {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return DefaultMonths
	}

	switch {
	case monthsToken.MatchString(s):
		if n := firstInt(s); n > 0 {
			return n
		}
	case yearsToken.MatchString(s):
		if n := firstInt(s); n > 0 {
			return n * 12
		}
	}
	return DefaultMonths
}

// TotalQuarters returns ceil(months/3), never less than 1.
func TotalQuarters(months int) int {
	q := int(math.Ceil(float64(months) / MonthsPerQuarter))
	if q < 1 {
		return 1
	}
	return q
}

// QuarterLabels returns header labels "Y1Q1", "Y1Q2", ... for total quarters.
func QuarterLabels(total int) []string {
	if total < 1 {
		total = 1
	}
	labels := make([]string, total)
	for i := 0; i < total; i++ {
		labels[i] = fmt.Sprintf("Y%dQ%d", i/4+1, i%4+1)
	}
	return labels
}

func firstInt(s string) int {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
