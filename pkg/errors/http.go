package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and a user-facing message.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose application code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is returned for failures the client cannot act on.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")

// AsHTTPError unwraps err into an HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
