package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Text is a string field that also accepts JSON numbers and booleans, since models often emit
// values like "teamSize": 5.
type Text string

// String implements fmt.Stringer.
func (t Text) String() string { return string(t) }

// Or returns t, or def when t is blank.
func (t Text) Or(def string) string {
	if strings.TrimSpace(string(t)) == "" {
		return def
	}
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("expected text value, got %s", string(data[:1]))
	default:
		*t = Text(data)
	}
	return nil
}

// Quarter is a 1-based quarter index. It accepts integers, floats (truncated) and numeric
// strings; any other value decodes as absent.
type Quarter int

// UnmarshalJSON implements json.Unmarshaler. Unusable values leave the quarter at zero, which
// Category.Timing treats as absent.
func (q *Quarter) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*q = quarterFromFloat(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			*q = quarterFromFloat(f)
		} else {
			*q = 0
		}
	default:
		*q = 0
	}
	return nil
}

func quarterFromFloat(f float64) Quarter {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Quarter(math.Trunc(f))
}

// Priority of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// UnmarshalJSON normalises the priority, defaulting to medium.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = NormalizePriority(string(t))
	return nil
}

// UnmarshalYAML normalises the priority, defaulting to medium.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("priority: expected scalar at line %d", node.Line)
	}
	*p = NormalizePriority(node.Value)
	return nil
}

// OrDefault returns p, or medium when p is unset.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// NormalizePriority maps free text onto high, medium or low.
func NormalizePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "alta", "alto", "critical":
		return PriorityHigh
	case "low", "baixa", "baixo":
		return PriorityLow
	default:
		return PriorityMedium
	}
}
