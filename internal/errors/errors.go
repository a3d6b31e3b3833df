package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error carries the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Constructor functions for game rule errors

// InvalidSlot creates an invalid slot error
func InvalidSlot(message string) *Error {
	return New(CodeInvalidSlot, message)
}

// InvalidSlotf creates an invalid slot error with formatted message
func InvalidSlotf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidSlot, format, args...)
}

// SlotFull creates a slot full error
func SlotFull(message string) *Error {
	return New(CodeSlotFull, message)
}

// SlotFullf creates a slot full error with formatted message
func SlotFullf(format string, args ...interface{}) *Error {
	return Newf(CodeSlotFull, format, args...)
}

// CardNotOwned creates a card not owned error
func CardNotOwned(message string) *Error {
	return New(CodeCardNotOwned, message)
}

// CardNotOwnedf creates a card not owned error with formatted message
func CardNotOwnedf(format string, args ...interface{}) *Error {
	return Newf(CodeCardNotOwned, format, args...)
}

// CardNotFound creates a card not found error
func CardNotFound(message string) *Error {
	return New(CodeCardNotFound, message)
}

// CardNotFoundf creates a card not found error with formatted message
func CardNotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeCardNotFound, format, args...)
}

// InvalidTarget creates an invalid target error
func InvalidTarget(message string) *Error {
	return New(CodeInvalidTarget, message)
}

// InvalidTargetf creates an invalid target error with formatted message
func InvalidTargetf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidTarget, format, args...)
}

// NoAttackPower creates a no attack power error
func NoAttackPower(message string) *Error {
	return New(CodeNoAttackPower, message)
}

// InvalidPhase creates an invalid phase error
func InvalidPhase(message string) *Error {
	return New(CodeInvalidPhase, message)
}

// InvalidPhasef creates an invalid phase error with formatted message
func InvalidPhasef(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidPhase, format, args...)
}

// Conflict creates an optimistic concurrency conflict error
func Conflict(message string) *Error {
	return New(CodeConflict, message)
}

// Conflictf creates a conflict error with formatted message
func Conflictf(format string, args ...interface{}) *Error {
	return Newf(CodeConflict, format, args...)
}

// InsufficientCatalog creates an insufficient catalog error
func InsufficientCatalog(message string) *Error {
	return New(CodeInsufficientCatalog, message)
}

// InsufficientCatalogf creates an insufficient catalog error with formatted message
func InsufficientCatalogf(format string, args ...interface{}) *Error {
	return Newf(CodeInsufficientCatalog, format, args...)
}
