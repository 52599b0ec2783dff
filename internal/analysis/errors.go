package analysis

import (
	"errors"

	"gdd-roadmap/pkg/extract"
)

// Domain-specific errors for the analysis package.
var (
	// ErrMalformedResponse means the model answered but its text is not a usable roadmap.
	// The analysis is not retried automatically.
	ErrMalformedResponse = extract.ErrMalformedResponse

	// ErrProviderUnavailable means no language model provider produced an answer.
	ErrProviderUnavailable = errors.New("language model provider unavailable")

	ErrSessionNotFound     = errors.New("session not found")
	ErrAnalysisNotFound    = errors.New("no analysis for this session")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidExportFormat = errors.New("invalid export format")
	ErrInvalidStartDate    = errors.New("invalid start date")
	ErrCalendarDisabled    = errors.New("calendar sync is not configured")
)
