package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure surfaced by the graph core. The set is
// closed; transports map kinds onto their own status codes.
type ErrorKind string

const (
	ErrNotFound        ErrorKind = "not_found"
	ErrSchemaViolation ErrorKind = "schema_violation"
	ErrValidation      ErrorKind = "validation"
	ErrUnsupported     ErrorKind = "unsupported"
	ErrNoGraphLoaded   ErrorKind = "no_graph_loaded"
	ErrBatchRejected   ErrorKind = "batch_rejected"
	ErrPersistence     ErrorKind = "persistence"
	ErrInternal        ErrorKind = "internal"
)

// Error is the structured error carried across the core. Message never
// echoes raw user input verbatim; identifiers are quoted where needed.
type Error struct {
	Kind    ErrorKind        `json:"kind"`
	Message string           `json:"message"`
	Items   []BatchItemError `json:"items,omitempty"`
}

// BatchItemError reports a single failing item inside a rejected batch.
type BatchItemError struct {
	Index   int       `json:"index"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an Error of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not_found error.
func NotFoundf(format string, args ...any) *Error {
	return NewError(ErrNotFound, format, args...)
}

// Validationf builds a validation error.
func Validationf(format string, args ...any) *Error {
	return NewError(ErrValidation, format, args...)
}

// SchemaViolationf builds a schema_violation error.
func SchemaViolationf(format string, args ...any) *Error {
	return NewError(ErrSchemaViolation, format, args...)
}

// Unsupportedf builds an unsupported error.
func Unsupportedf(format string, args ...any) *Error {
	return NewError(ErrUnsupported, format, args...)
}

// Persistencef builds a persistence error.
func Persistencef(format string, args ...any) *Error {
	return NewError(ErrPersistence, format, args...)
}

// Internalf builds an internal error.
func Internalf(format string, args ...any) *Error {
	return NewError(ErrInternal, format, args...)
}

// BatchRejected builds a batch_rejected error carrying per-item detail.
func BatchRejected(items []BatchItemError) *Error {
	return &Error{
		Kind:    ErrBatchRejected,
		Message: fmt.Sprintf("batch rejected: %d item(s) failed validation", len(items)),
		Items:   items,
	}
}

// ErrNoGraph is the shared no_graph_loaded error value.
var ErrNoGraph = &Error{Kind: ErrNoGraphLoaded, Message: "no graph loaded"}

// KindOf extracts the ErrorKind from an error chain. Unclassified errors are
// reported as internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrInternal
}

// AsError returns the *Error in err's chain, wrapping unclassified errors as
// internal with a generic message so traces never leak to transports.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: ErrInternal, Message: "internal error"}
}
