package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsInvalidSlot checks if an error is an invalid slot error
func IsInvalidSlot(err error) bool {
	return GetCode(err) == CodeInvalidSlot
}

// IsSlotFull checks if an error is a slot full error
func IsSlotFull(err error) bool {
	return GetCode(err) == CodeSlotFull
}

// IsCardNotOwned checks if an error is a card not owned error
func IsCardNotOwned(err error) bool {
	return GetCode(err) == CodeCardNotOwned
}

// IsCardNotFound checks if an error is a card not found error
func IsCardNotFound(err error) bool {
	return GetCode(err) == CodeCardNotFound
}

// IsInvalidTarget checks if an error is an invalid target error
func IsInvalidTarget(err error) bool {
	return GetCode(err) == CodeInvalidTarget
}

// IsNoAttackPower checks if an error is a no attack power error
func IsNoAttackPower(err error) bool {
	return GetCode(err) == CodeNoAttackPower
}

// IsInvalidPhase checks if an error is an invalid phase error
func IsInvalidPhase(err error) bool {
	return GetCode(err) == CodeInvalidPhase
}

// IsConflict checks if an error is an optimistic concurrency conflict
func IsConflict(err error) bool {
	return GetCode(err) == CodeConflict
}

// IsInsufficientCatalog checks if an error is an insufficient catalog error
func IsInsufficientCatalog(err error) bool {
	return GetCode(err) == CodeInsufficientCatalog
}
