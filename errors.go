// Package cliffnet structured error types
package cliffnet

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Shape errors: a tensor's dimensions disagree with what an operation expects
	ErrTypeShape ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Numerical errors
	ErrTypeNumerical
	// Encoding and decoding of parameters
	ErrTypeIO
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cliffnet %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("cliffnet %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeShape:
		return "Shape"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeNumerical:
		return "Numerical"
	case ErrTypeIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// ShapeContext records the dimension that was expected and the one received.
type ShapeContext struct {
	Dim      string
	Expected int
	Got      int
}

// NewShapeError creates a dimension mismatch error
func NewShapeError(op, dim string, expected, got int) error {
	return &Error{
		Type:    ErrTypeShape,
		Op:      op,
		Message: fmt.Sprintf("%s mismatch: expected %d, got %d", dim, expected, got),
		Context: ShapeContext{Dim: dim, Expected: expected, Got: got},
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewNumericalError creates a numerical error
func NewNumericalError(op string, message string, context interface{}) error {
	return &Error{
		Type:    ErrTypeNumerical,
		Op:      op,
		Message: message,
		Context: context,
	}
}

// NewIOError creates an encoding or decoding error
func NewIOError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

var (
	// ErrNilTensor is returned when an operation receives a nil tensor
	ErrNilTensor = NewInvalidArgError("Tensor", "nil tensor")

	// ErrNonFinite is returned by CheckFinite
	ErrNonFinite = NewNumericalError("CheckFinite", "non-finite value in tensor", nil)
)

func isType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsShapeError checks if an error is a dimension mismatch
func IsShapeError(err error) bool {
	return isType(err, ErrTypeShape)
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	return isType(err, ErrTypeInvalidArg)
}

// IsNumericalError checks if an error is a numerical error
func IsNumericalError(err error) bool {
	return isType(err, ErrTypeNumerical)
}

// IsIOError checks if an error came from parameter encoding or decoding
func IsIOError(err error) bool {
	return isType(err, ErrTypeIO)
}
