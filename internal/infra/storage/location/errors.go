package location

import "errors"

var (
	// ErrLocationNotFound is returned when no location matches the lookup
	ErrLocationNotFound = errors.New("location.repository: location not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("location.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("location.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("location.repository: failed to scan row")

	// ErrEncode is returned when a JSONB column cannot be marshaled
	ErrEncode = errors.New("location.repository: failed to encode column")

	// ErrDecode is returned when a JSONB column cannot be unmarshaled
	ErrDecode = errors.New("location.repository: failed to decode column")
)
