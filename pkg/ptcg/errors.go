package ptcg

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents the error object returned by the upstream API.
type APIError struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// ResponseError represents the error envelope from the API:
// {"error": {"message": ..., "code": ...}}.
type ResponseError struct {
	Err APIError `json:"error"`

	// StatusCode is the HTTP status of the failing response.
	StatusCode int `json:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if e.Err.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return e.Err.Error()
}

// Is lets a 404 ResponseError match ErrNotFound via errors.Is.
func (e *ResponseError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Common static errors that can be wrapped with context.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrLookupNotSupported = errors.New("resource kind has no lookup-by-id endpoint")
	ErrConfigRequired     = errors.New("config is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrIDRequired         = errors.New("resource ID is required")
	ErrNoMoreItems        = errors.New("no more items")
)

// IsNotFound checks if the error represents an absent resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if the error is an upstream rate-limit rejection.
func IsRateLimited(err error) bool {
	respErr := &ResponseError{}

	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusTooManyRequests
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	respErr := &ResponseError{}
	if !errors.As(err, &respErr) {
		return false
	}

	return respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden
}
