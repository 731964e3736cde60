package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing endpoint or a negative rate limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidRetryConfigs indicates an unknown backoff kind or a backoff
	// without a base delay.
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrInvalidStorageConfigs indicates invalid registry settings
	// (for example, a registry DSN without a store passphrase).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid batch settings
	// (for example, negative concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidUserObjectConfigs indicates an unusable user object
	// description (missing API key, bad id, type or keys).
	ErrInvalidUserObjectConfigs = errors.New("invalid user object configuration")
	// ErrInvalidCallConfigs indicates an unknown operation or a random
	// operation with a bad length or with inputs.
	ErrInvalidCallConfigs = errors.New("invalid call configuration")
)
