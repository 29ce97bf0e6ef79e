package pricing

import "errors"

var (
	// ErrMissingBase is returned when a quote names no base service.
	ErrMissingBase = errors.New("a base service id is required")
	// ErrUnknownBase is returned when the base service is not in the catalog.
	ErrUnknownBase = errors.New("base service not found in catalog")
)
