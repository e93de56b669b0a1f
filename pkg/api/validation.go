package api

import (
	"sort"
	"strings"
)

// ValidationError collects request validation problems keyed by field.
// It renders as a 422 response with per-field details.
type ValidationError map[string][]string

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add records a problem for a field.
func (e ValidationError) Add(field, message string) {
	e[field] = append(e[field], message)
}

// IsEmpty reports whether no problems were recorded.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the field has at least one problem.
func (e ValidationError) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the first problem recorded for the field, or "".
func (e ValidationError) Get(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Error implements the error interface. Only the first problem per field
// appears in the message; the full set stays available on the map.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		if len(msgs) > 0 {
			parts = append(parts, field+": "+msgs[0])
		}
	}
	sort.Strings(parts)
	return "validation error: " + strings.Join(parts, "; ")
}
