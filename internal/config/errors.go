package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is
// fatal at startup.
var (
	// ErrMissingSecretKey indicates that SECRET_KEY was not provided by any
	// configuration source.
	ErrMissingSecretKey = errors.New("SECRET_KEY is not set")
	// ErrUnsupportedAlgorithm indicates an ALGORITHM other than HS256,
	// HS384 or HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
	// ErrInvalidTokenTTL indicates a non-positive token lifetime.
	ErrInvalidTokenTTL = errors.New("token lifetime must be a positive number of minutes")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
