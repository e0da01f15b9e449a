package locations

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	// or belongs to another shop.
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected repository failures
	ErrInternal = errors.New("locations service: internal error")
)
