// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidCapacity is returned by constructors when the requested
	// capacity is below one. A zero-capacity queue would be permanently
	// both empty and full, so it is rejected up front.
	ErrInvalidCapacity = fmt.Errorf("capacity must be at least 1")

	// ErrInvalidBatchSize is returned by printq.New when the per-poll
	// batch is below one.
	ErrInvalidBatchSize = fmt.Errorf("batch size must be at least 1")

	// ErrTypeMismatch is returned by the byte adapter's dynamic-input
	// path when the argument is not byte-like. Queue state is unchanged.
	ErrTypeMismatch = fmt.Errorf("bytes, string or byte required")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeInvalidBatchSize
	ErrCodeTypeMismatch
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context. Errors
// surfaced by constructors and by the dynamic-input path are of this
// type, carrying the offending value in Context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel so errors.Is matches the
// structured and sentinel forms interchangeably.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeInvalidBatchSize:
		return ErrInvalidBatchSize
	case ErrCodeTypeMismatch:
		return ErrTypeMismatch
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
