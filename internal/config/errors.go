package config

import "errors"

// Validation errors returned when configuration values are malformed or
// incomplete.
var (
	// ErrInvalidServerConfigs indicates a server setting that was provided
	// but cannot be used (for example, a PORT that is not an unsigned
	// integer).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid client CLI settings
	// (for example, empty server URL or non-positive request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
