// Package errs defines the closed set of error kinds produced while analyzing,
// storing and querying strings.
//
// Errors are built on github.com/cockroachdb/errors so they carry a stack and can be
// wrapped freely; callers recover the kind with KindOf or Is:
//
//	if errs.Is(err, errs.KindNotFound) {
//	    // respond 404
//	}
//
// Mapping a kind to a transport status belongs to the caller, never to this package.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies an Error
type Kind int

const (
	KindUnknown            Kind = iota
	KindValidation              // A structured field failed to coerce to its type
	KindUnparseableQuery        // A natural language query produced no filters
	KindConflictingFilters      // Translated filters contradict each other
	KindDuplicateRecord         // A record with the same content hash exists
	KindNotFound                // No record matches the requested value
)

// String returns a stable name for the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnparseableQuery:
		return "unparseable_query"
	case KindConflictingFilters:
		return "conflicting_filters"
	case KindDuplicateRecord:
		return "duplicate_record"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a tagged error of a known kind
type Error struct {
	Kind    Kind
	Field   string // Offending field, set for validation errors
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, field, message string) error {
	return errors.WithStackDepth(&Error{Kind: kind, Field: field, Message: message}, 2)
}

// Validation reports a field that could not be coerced to its required type
func Validation(field, format string, args ...any) error {
	return newError(KindValidation, field, fmt.Sprintf(format, args...))
}

// UnparseableQuery reports a natural language query that matched no pattern
func UnparseableQuery(query string) error {
	return errors.WithDetailf(newError(KindUnparseableQuery, "", "Unable to parse natural language query"), "query: %q", query)
}

// ConflictingFilters reports a translated lower length bound above the upper bound
func ConflictingFilters(minLength, maxLength int) error {
	return newError(KindConflictingFilters, "", fmt.Sprintf("Query parsed but resulted in conflicting filters: min_length %d is greater than max_length %d", minLength, maxLength))
}

// DuplicateRecord reports a value whose hash is already stored
func DuplicateRecord(id string) error {
	return errors.WithDetailf(newError(KindDuplicateRecord, "", "String already exists in the system"), "id: %s", id)
}

// NotFound reports a lookup or delete for a value that is not stored
func NotFound(value string) error {
	return errors.WithDetailf(newError(KindNotFound, "", "String not found"), "value: %q", value)
}

// KindOf returns the kind of the first *Error in the chain, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldOf returns the offending field of a validation error, if any
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
