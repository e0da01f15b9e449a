package service

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches the lookup
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrSlotsNotFound is returned when a service has no slots record
	ErrSlotsNotFound = errors.New("service.repository: slots record not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("service.repository: failed to scan row")

	// ErrEncode is returned when a JSONB column cannot be marshaled
	ErrEncode = errors.New("service.repository: failed to encode column")

	// ErrDecode is returned when a JSONB column cannot be unmarshaled
	ErrDecode = errors.New("service.repository: failed to decode column")
)
