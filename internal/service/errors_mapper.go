// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-uo-client/internal/adapter"
	"github.com/MKhiriev/go-uo-client/internal/metrics"
	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/internal/retry"
)

// classifyAttemptError decides what a failed attempt means for the call.
// The returned error is either retryable as is or wrapped with
// [retry.Abort]; outcome is the attempt label for metrics.
func classifyAttemptError(err error) (error, string) {
	var (
		statusErr *protocol.StatusError
		httpErr   *adapter.HTTPError
	)
	switch {
	case errors.As(err, &statusErr):
		metrics.RecordStatus(statusErr.Class().String())
		if statusErr.Retryable() {
			return err, metrics.OutcomeRetry
		}
		return retry.Abort(err), metrics.OutcomeAborted

	case errors.As(err, &httpErr) && httpErr.Permanent():
		return retry.Abort(err), metrics.OutcomeAborted

	case errors.Is(err, protocol.ErrCorruptedResponse),
		errors.Is(err, protocol.ErrIllegalState):
		return retry.Abort(err), metrics.OutcomeAborted
	}

	// transport failures, throttling and server errors
	return err, metrics.OutcomeRetry
}

// callOutcome maps the terminal result of a call to its metrics label.
func callOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, retry.ErrRetryAborted):
		return metrics.OutcomeAborted
	case errors.Is(err, retry.ErrRetryCancelled):
		return metrics.OutcomeCancelled
	default:
		return metrics.OutcomeFailed
	}
}
