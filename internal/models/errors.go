package models

import "errors"

// ErrNotFound is returned when a looked-up record does not exist.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("record was not found")

// FieldError is a single normalized error entry. Field is empty for errors
// that are not tied to a specific field (not found, internal failures).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered list of field violations produced by
// the schema validator. Handlers map it to HTTP 400.
type ValidationError struct {
	Violations []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "validation failed: " + e.Violations[0].Message
	}
	return "validation failed"
}

// ConstraintError carries per-column entries for a store-level constraint
// violation (e.g. a unique index breach). Handlers map it to HTTP 400.
type ConstraintError struct {
	Violations []FieldError
}

func (e ConstraintError) Error() string {
	if len(e.Violations) > 0 {
		return "constraint violation: " + e.Violations[0].Message
	}
	return "constraint violation"
}
