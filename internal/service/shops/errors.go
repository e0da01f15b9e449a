package shops

import "errors"

var (
	// ErrInvalidDomain is returned for a blank storefront domain
	ErrInvalidDomain = errors.New("invalid shop domain")

	// ErrInternal is returned on unexpected repository failures
	ErrInternal = errors.New("shops service: internal error")
)
