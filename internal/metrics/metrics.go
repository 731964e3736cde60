// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus instrumentation for ProcessData calls:
// how many calls and attempts were made, how they ended, and how long they
// took.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all client metrics.
	Namespace = "uoclient"

	// Label names
	LabelFunction   = "function"
	LabelOutcome    = "outcome"
	LabelClass      = "class"
	LabelStatusCode = "status_code"

	// Outcome values
	OutcomeSuccess   = "success"
	OutcomeRetry     = "retry"
	OutcomeFailed    = "failed"
	OutcomeAborted   = "aborted"
	OutcomeCancelled = "cancelled"
)

var (
	// CallsTotal counts logical ProcessData calls by function and outcome.
	CallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "calls_total",
			Help:      "Total number of ProcessData calls by function and outcome",
		},
		[]string{LabelFunction, LabelOutcome},
	)

	// AttemptsTotal counts single attempts. A failed attempt that will be
	// retried is recorded as "retry".
	AttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "attempts_total",
			Help:      "Total number of ProcessData attempts by function and outcome",
		},
		[]string{LabelFunction, LabelOutcome},
	)

	// CallDuration tracks the wall time of a logical call including waits.
	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "call_duration_seconds",
			Help:      "Duration of ProcessData calls in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{LabelFunction},
	)

	// StatusTotal counts non-OK service statuses by class.
	StatusTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "service_status_total",
			Help:      "Total number of non-OK service statuses by class",
		},
		[]string{LabelClass},
	)

	// HTTPRequestsTotal counts transport requests by HTTP status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests to the service by status code",
		},
		[]string{LabelStatusCode},
	)

	enabled atomic.Bool
)

func init() {
	enabled.Store(true)
}

// Enable turns recording on.
func Enable() { enabled.Store(true) }

// Disable turns recording off.
func Disable() { enabled.Store(false) }

// IsEnabled reports whether recording is on.
func IsEnabled() bool { return enabled.Load() }

// RecordCall records the end of a logical call.
func RecordCall(function, outcome string, seconds float64) {
	if !enabled.Load() {
		return
	}
	CallsTotal.WithLabelValues(function, outcome).Inc()
	CallDuration.WithLabelValues(function).Observe(seconds)
}

// RecordAttempt records the end of one attempt.
func RecordAttempt(function, outcome string) {
	if !enabled.Load() {
		return
	}
	AttemptsTotal.WithLabelValues(function, outcome).Inc()
}

// RecordStatus records a non-OK service status.
func RecordStatus(class string) {
	if !enabled.Load() {
		return
	}
	StatusTotal.WithLabelValues(class).Inc()
}

// RecordHTTPRequest records one transport request.
func RecordHTTPRequest(statusCode string) {
	if !enabled.Load() {
		return
	}
	HTTPRequestsTotal.WithLabelValues(statusCode).Inc()
}
