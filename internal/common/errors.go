// Package common defines shared sentinel errors used across the
// service, repository and transport layers. Callers should use
// errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("email already in use")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthenticated    = errors.New("unauthenticated")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorForbidden          = errors.New("forbidden")

	// Auth errors (invalid or malformed token).
	ErrorInvalidToken = errors.New("invalid token")
)

// ValidationError carries every field-level message produced by schema
// validation, so a single failed save reports all problems at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}

// Add appends a field message and returns the receiver for chaining.
func (e *ValidationError) Add(msg string) *ValidationError {
	e.Messages = append(e.Messages, msg)
	return e
}

// OrNil returns nil when no messages were collected, so callers can
// write `return v.OrNil()` at the end of a validation pass.
func (e *ValidationError) OrNil() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}
