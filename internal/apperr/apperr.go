// Package apperr defines the error taxonomy shared by services and handlers.
// Each Kind maps to exactly one HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindValidation Kind = iota + 1
	KindMalformedPayload
	KindMissingIdentifier
	KindInvalidIdentifier
	KindDuplicate
	KindNotFound
	KindUnsupportedOperation
	KindStoreFailure
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMalformedPayload:
		return "malformed_payload"
	case KindMissingIdentifier:
		return "missing_identifier"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not_found"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindStoreFailure:
		return "store_failure"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is an application error carrying the message returned to clients
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so callers can write
// errors.Is(err, &apperr.Error{Kind: apperr.KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Validation reports a missing, empty or ill-typed field
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// MissingField reports the first required field absent from a create payload
func MissingField(field string) *Error {
	return Validation("Missing required field: %s", field)
}

// MalformedPayload reports a body that is not a usable JSON object
func MalformedPayload(err error) *Error {
	return &Error{Kind: KindMalformedPayload, Message: "Invalid JSON data", Err: err}
}

// MissingIdentifier reports a write or delete issued without an id
func MissingIdentifier(kind string) *Error {
	return &Error{Kind: KindMissingIdentifier, Message: kind + " ID required"}
}

// InvalidIdentifier reports an id that is not a well-formed store key
func InvalidIdentifier(err error) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: "Invalid ID format", Err: err}
}

// Duplicate reports a uniqueness violation
func Duplicate(message string, err error) *Error {
	return &Error{Kind: KindDuplicate, Message: message, Err: err}
}

// Conflict reports a write that lost a race with another write to the same document
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound reports that no document matched the identifier
func NotFound(kind string) *Error {
	return &Error{Kind: KindNotFound, Message: kind + " not found"}
}

// Unsupported reports an HTTP method the resource does not serve
func Unsupported() *Error {
	return &Error{Kind: KindUnsupportedOperation, Message: "Method not allowed"}
}

// StoreFailure wraps an error returned by the document store
func StoreFailure(err error) *Error {
	return &Error{Kind: KindStoreFailure, Message: "Database error: " + err.Error(), Err: err}
}

// KindOf returns the Kind of err, treating unclassified errors as store failures
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStoreFailure
}

// Status maps err to the HTTP status code returned to clients
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindMalformedPayload, KindMissingIdentifier, KindInvalidIdentifier:
		return http.StatusBadRequest
	case KindDuplicate, KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupportedOperation:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Database error: " + err.Error()
}
