package formguard

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Configuration errors. These signal a mistake in the schema itself, not a
// user-input failure, and abort the whole Validate call.
var (
	// ErrUnknownRule is returned when a rule spec references a rule that has
	// no handler in the dispatch table.
	ErrUnknownRule = errors.New("rule is not defined")

	// ErrUnknownList is returned when an in/not_in/mime parameter names a
	// list the schema does not declare.
	ErrUnknownList = errors.New("named list is not defined")

	// ErrInvalidSchema is returned for a rule spec or rule parameter of an
	// unsupported form.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ErrorCollection maps field names to their validation messages, in the
// order the failing rules were written.
// It's based on url.Values to leverage built-in string slice handling.
type ErrorCollection url.Values

// NewErrorCollection creates an empty collection.
func NewErrorCollection() ErrorCollection {
	return make(ErrorCollection)
}

// Error implements the error interface.
// Returns a human-readable message summarizing the validation failures.
func (e ErrorCollection) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error message for a field.
func (e ErrorCollection) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ErrorCollection) Get(field string) string {
	return url.Values(e).Get(field)
}

// All returns every message recorded for a field, in rule order.
func (e ErrorCollection) All(field string) []string {
	return e[field]
}

// Has checks if a field has any errors.
func (e ErrorCollection) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ErrorCollection) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the failing field names in lexical order.
func (e ErrorCollection) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
