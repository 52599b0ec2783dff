// Package extract recovers a single JSON document from free-form language-model output.
//
// Models frequently wrap structured answers in Markdown fences or surround them with prose.
// Payload strips an optional fence; Extract and Decode additionally require the payload to be
// valid JSON and report ErrMalformedResponse otherwise.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// ErrMalformedResponse is returned when the fence-stripped text is not valid JSON.
var ErrMalformedResponse = errors.New("malformed model response")

// Payload returns the trimmed text between the opening fence and the last closing fence.
// Text without a usable fence is returned trimmed and otherwise unchanged.
func Payload(raw string) string {
	if start := strings.Index(raw, jsonFence); start >= 0 {
		if body, ok := between(raw, start+len(jsonFence)); ok {
			return strings.TrimSpace(body)
		}
		return strings.TrimSpace(raw)
	}

	if start := strings.Index(raw, fence); start >= 0 {
		if body, ok := between(raw, start+len(fence)); ok {
			return strings.TrimSpace(skipLanguageTag(body))
		}
	}

	return strings.TrimSpace(raw)
}

// Extract returns the JSON document embedded in raw.
func Extract(raw string) (json.RawMessage, error) {
	payload := Payload(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	if !json.Valid([]byte(payload)) {
		var probe any
		err := json.Unmarshal([]byte(payload), &probe)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return json.RawMessage(payload), nil
}

// Decode extracts the JSON document from raw and unmarshals it into v.
func Decode(raw string, v any) error {
	doc, err := Extract(raw)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// between returns raw[from:last] where last is the final fence in raw.
func between(raw string, from int) (string, bool) {
	end := strings.LastIndex(raw, fence)
	if end <= from {
		return "", false
	}
	return raw[from:end], true
}

// skipLanguageTag drops a bare tag such as "javascript" directly after an opening fence.
// A first line that is itself a JSON scalar ("42", "true") is payload, not a tag.
func skipLanguageTag(body string) string {
	nl := strings.IndexByte(body, '\n')
	if nl <= 0 {
		return body
	}
	tag := strings.TrimRight(body[:nl], " \t\r")
	if tag == "" || !isTag(tag) || json.Valid([]byte(tag)) {
		return body
	}
	return body[nl+1:]
}

func isTag(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '+' || r == '.':
		default:
			return false
		}
	}
	return true
}
