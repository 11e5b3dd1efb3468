package apiclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a by-id read cannot be served from the
// sample catalog.
var ErrNotFound = errors.New("not found")

// ErrUnknownOperation means the configured endpoint set has no entry for a call.
var ErrUnknownOperation = errors.New("operation not mapped to an endpoint")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Op         Operation
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error returns the response body text, or a status message when the body
// was empty.
func (e *APIError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// DecodeError means a 2xx body could not be parsed.
type DecodeError struct {
	Op  Operation
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from err, or 0 if err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
