package services

import (
	"errors"
	"strings"
)

// Service errors map onto the handler boundary's response taxonomy:
// validation → 400, forbidden → 403, not found → 404, conflict → 400 with the
// specific message.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects a request over a malformed or missing field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// ConflictError rejects a request that would duplicate state or re-run a
// finished transition.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func conflictErr(reason string) error {
	return &ConflictError{Reason: reason}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
