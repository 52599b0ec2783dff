package http

import (
	"context"
	"errors"
	"net/http"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/pkg/document"
	pkgErrors "gdd-roadmap/pkg/errors"
)

var (
	errMissingSession = pkgErrors.NewHTTPError(http.StatusBadRequest, "session_id is required")
	errMissingFile    = pkgErrors.NewHTTPError(http.StatusBadRequest, "file is required")
	errInvalidIndex   = pkgErrors.NewHTTPError(http.StatusBadRequest, "task index must be a non-negative integer")
	errMissingFlag    = pkgErrors.NewHTTPError(http.StatusBadRequest, "completed is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, analysis.ErrAnalysisNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no analysis for this session")
	case errors.Is(err, analysis.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, analysis.ErrMalformedResponse):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity,
			"the model answer could not be read as a roadmap, retry the analysis")
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "the analysis timed out, retry later")
	case errors.Is(err, analysis.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway,
			"the language model is unavailable, check the connection and retry")
	case errors.Is(err, document.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
	case errors.Is(err, document.ErrUnsupportedType):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported file type, upload .txt, .md or .docx")
	case errors.Is(err, document.ErrEmptyDocument):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "document has no readable text")
	case errors.Is(err, analysis.ErrInvalidExportFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be json or yaml")
	case errors.Is(err, analysis.ErrInvalidStartDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	case errors.Is(err, analysis.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar sync is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
