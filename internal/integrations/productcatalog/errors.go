package productcatalog

import "errors"

var (
	// ErrProductNotFound is returned when the linked product no longer
	// exists in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("productcatalog client: internal error")

	// ErrInvalidResponse is returned on malformed catalog responses
	ErrInvalidResponse = errors.New("productcatalog client: invalid response")

	// ErrServiceDegraded marks catalog outages the caller may tolerate
	ErrServiceDegraded = errors.New("productcatalog unavailable: graceful degradation applied")
)
