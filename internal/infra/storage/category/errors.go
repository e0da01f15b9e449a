package category

import "errors"

var (
	// ErrCategoryNotFound is returned when no category matches the lookup
	ErrCategoryNotFound = errors.New("category.repository: category not found")

	// ErrDuplicateSlug is returned when a category slug already exists
	// for the shop.
	ErrDuplicateSlug = errors.New("category.repository: duplicate category slug")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("category.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("category.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("category.repository: failed to scan row")
)
