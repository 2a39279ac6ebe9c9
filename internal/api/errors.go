package api

import (
	"errors"
	"fmt"
)

// Error is a failed API response decoded into the error taxonomy callers
// branch on. Transport-level failures are wrapped stdlib errors, not *Error.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsStatus reports whether err is an API error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool { return IsStatus(err, 401) }

// IsForbidden reports whether err is an HTTP 403 response.
func IsForbidden(err error) bool { return IsStatus(err, 403) }
