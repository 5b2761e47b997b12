package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an overlay error
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested element, condition or descriptor was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create an element that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal failure
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a backing store or game state source is unavailable
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates user input that could not be committed
	CodeValidation Code = "validation"
)

// Error is an overlay error carrying a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata value and returns the error for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err, keeping its code when it is already an *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var ovErr *Error
	if errors.As(err, &ovErr) {
		return &Error{
			Code:    ovErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(ovErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool {
	var ovErr *Error
	if errors.As(err, &ovErr) {
		return ovErr.Code == code
	}
	return false
}

// IsNotFound checks for a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks for an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks for an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsValidation checks for a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the code of err, or CodeUnknown
func GetCode(err error) Code {
	var ovErr *Error
	if errors.As(err, &ovErr) {
		return ovErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of err
func GetMeta(err error) map[string]any {
	var ovErr *Error
	if errors.As(err, &ovErr) {
		return ovErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
