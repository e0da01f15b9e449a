package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when a shop has no settings row
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEncode is returned when JSONB payload encoding fails
	ErrEncode = errors.New("settings.repository: failed to encode payload")

	// ErrDecode is returned when JSONB payload decoding fails
	ErrDecode = errors.New("settings.repository: failed to decode payload")
)
