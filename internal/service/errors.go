package service

import "errors"

var (
	// ErrFunctionMismatch is returned when an operation is asked of a user
	// object whose function does not provide it.
	ErrFunctionMismatch = errors.New("user object function does not match operation")

	// ErrInvalidInput is returned for operation input the service would
	// reject anyway, such as unaligned AES blocks.
	ErrInvalidInput = errors.New("invalid operation input")

	// ErrInvalidUserObject is returned when a user object lacks the fields
	// an operation or the registry needs.
	ErrInvalidUserObject = errors.New("invalid user object")

	// ErrRegistryDisabled is returned by registry calls when no registry
	// database is configured.
	ErrRegistryDisabled = errors.New("user object registry is not configured")
)
