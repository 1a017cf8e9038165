package config

import "errors"

// Validation errors returned by the validate methods when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid upstream settings
	// (for example, a missing channel tree URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidBotConfigs indicates invalid bot settings
	// (for example, a missing token or an unknown mode).
	ErrInvalidBotConfigs = errors.New("invalid bot configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, webhook mode without a listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
