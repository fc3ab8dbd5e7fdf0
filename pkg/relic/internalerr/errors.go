package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound           = errors.New("not found")
	ErrMalformedDirective = errors.New("malformed directive")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
