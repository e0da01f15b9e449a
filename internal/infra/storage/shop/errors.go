package shop

import "errors"

var (
	// ErrShopNotFound is returned when no shop matches the lookup
	ErrShopNotFound = errors.New("shop.repository: shop not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("shop.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("shop.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("shop.repository: failed to scan row")
)
