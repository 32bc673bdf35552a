package probe

import "errors"

// Errors for configuration validation.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// Errors for input validation.
var (
	ErrNoPaths   = errors.New("no paths provided")
	ErrEmptyPath = errors.New("path is required")
)
