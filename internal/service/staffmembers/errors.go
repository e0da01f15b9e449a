package staffmembers

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not
	// exist or belongs to another shop.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrGroupNotFound is returned when the staff group does not
	// exist or belongs to another shop.
	ErrGroupNotFound = errors.New("staff group not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected repository failures
	ErrInternal = errors.New("staffmembers service: internal error")
)
