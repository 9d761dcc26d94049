package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown backend selector, a postgres backend without a
	// DSN, or a missing photo cache directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative orphan grace window).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
