package services

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	// or belongs to another shop.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("services service: internal error")
)
