package response

import "time"

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failures from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code of 500 responses.
	InternalServerErrorCode = 500

	// ValidationErrorCode is the error_code of malformed requests.
	ValidationErrorCode = 1

	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
