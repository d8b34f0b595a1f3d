package pluvo

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the base error for every failure raised by this library. API
// failures are represented by APIError, which unwraps to an Error, so callers
// can catch all library errors uniformly:
//
//	var pErr *pluvo.Error
//	if errors.As(err, &pErr) { ... }
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// APIError represents a non-success response from the Pluvo API.
type APIError struct {
	Message    string `json:"message"     yaml:"message"`
	StatusCode int    `json:"status_code" yaml:"status_code"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP status %d - %s", e.StatusCode, e.Message)
}

// Unwrap makes APIError match the general Error kind in errors.As chains.
func (e *APIError) Unwrap() error {
	return &Error{Message: e.Message}
}

// Validation errors raised before any network call is attempted.
var (
	ErrClientCredentialsIncomplete = &Error{Message: "you need to set both client_id and client_secret"}
	ErrAmbiguousCredentials        = &Error{Message: "you can not use both client and token authentication simultaneously"}
	ErrAPIURLRequired              = &Error{Message: "API URL is required"}
	ErrConfigRequired              = &Error{Message: "config is required"}
)

// Static errors that can be wrapped with context.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// IsNotFound checks if the error is a not found API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized API error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden API error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
