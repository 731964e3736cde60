package client

import "errors"

var (
	// ErrInvalidInput is returned when an input line is not valid hex.
	ErrInvalidInput = errors.New("invalid call input")

	// ErrCallsFailed is returned when at least one call of a run failed.
	ErrCallsFailed = errors.New("process data calls failed")
)
