package save_service

import (
	"errors"
	"strings"
)

var (
	// ErrServiceNotFound is returned when updating a missing service
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceTypeChanged is returned when an update tries to switch
	// the service type. Stored slot data is shaped by the type, so the
	// type is immutable after creation.
	ErrServiceTypeChanged = errors.New("service type cannot be changed")

	// ErrValidationFailed marks publish-gate violations
	ErrValidationFailed = errors.New("validation failed")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("save_service usecase: internal error")
)

// ValidationError carries the human-readable violations of a failed
// publish gate. It matches ErrValidationFailed under errors.Is.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
