package service

import "errors"

// Client-error sentinels. Handlers map these to 400s; anything else is a 500.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrUnknownPosition  = errors.New("unknown position filter")
	ErrUnknownWindow    = errors.New("unknown rolling window")
)

// ErrNotConfigured is returned by a service missing its repository. Handlers
// surface it as a 500; a nil result with a nil error never leaves a service.
var ErrNotConfigured = errors.New("service not configured")
