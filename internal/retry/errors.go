// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"errors"
	"fmt"
)

var (
	// ErrRetryFailed means the strategy ran out of attempts.
	ErrRetryFailed = errors.New("retry failed")

	// ErrRetryAborted means the job flagged a failure as unrecoverable.
	ErrRetryAborted = errors.New("retry aborted")

	// ErrRetryCancelled means the call was cancelled before it succeeded.
	ErrRetryCancelled = errors.New("retry cancelled")

	// ErrAlreadyRunning is returned when an engine is started while a run is
	// still in progress.
	ErrAlreadyRunning = errors.New("retry engine already running")
)

// Error is the terminal outcome of a call that did not succeed. It matches
// its Kind and its Last error with [errors.Is].
type Error struct {
	// Kind is one of ErrRetryFailed, ErrRetryAborted or ErrRetryCancelled.
	Kind error

	// Attempts is the number of attempts made.
	Attempts int

	// Last is the last error returned by the job, nil if the job never ran.
	Last error
}

func (e *Error) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("%v after %d attempt(s)", e.Kind, e.Attempts)
	}
	return fmt.Sprintf("%v after %d attempt(s): %v", e.Kind, e.Attempts, e.Last)
}

func (e *Error) Unwrap() []error {
	if e.Last == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Last}
}

type abortError struct {
	err error
}

func (e *abortError) Error() string { return e.err.Error() }

func (e *abortError) Unwrap() error { return e.err }

// Abort marks err as unrecoverable. An engine stops retrying as soon as a
// job returns an aborted error. Abort(nil) returns nil.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	return &abortError{err: err}
}

// IsAbort reports whether err was marked with [Abort].
func IsAbort(err error) bool {
	var a *abortError
	return errors.As(err, &a)
}

func unwrapAbort(err error) error {
	var a *abortError
	if errors.As(err, &a) {
		return a.err
	}
	return err
}
