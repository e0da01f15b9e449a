package categories

import "errors"

var (
	// ErrCategoryNotFound is returned when the category does not
	// exist or belongs to another shop.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateSlug is returned when the slug is already taken
	ErrDuplicateSlug = errors.New("category slug already exists")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected repository failures
	ErrInternal = errors.New("categories service: internal error")
)
