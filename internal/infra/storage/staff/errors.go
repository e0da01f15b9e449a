package staff

import "errors"

var (
	// ErrStaffNotFound is returned when no staff member matches the lookup
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrGroupNotFound is returned when no staff group matches the lookup
	ErrGroupNotFound = errors.New("staff.repository: staff group not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("staff.repository: failed to scan row")

	// ErrEncode is returned when a JSONB column cannot be marshaled
	ErrEncode = errors.New("staff.repository: failed to encode column")

	// ErrDecode is returned when a JSONB column cannot be unmarshaled
	ErrDecode = errors.New("staff.repository: failed to decode column")
)
