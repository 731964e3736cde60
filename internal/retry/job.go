// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import "context"

// Job is one attempt of a logical call. It reports success by returning a
// nil error. Failures are retried unless wrapped with [Abort].
type Job[T any] interface {
	Run(ctx context.Context) (T, error)
}

// JobFunc adapts a function to [Job].
type JobFunc[T any] func(ctx context.Context) (T, error)

// Run calls f(ctx).
func (f JobFunc[T]) Run(ctx context.Context) (T, error) {
	return f(ctx)
}

// RetryNotifier is implemented by jobs that want to know they are being
// retried. OnRetry is called before every attempt after the first, with the
// number of the coming attempt and the error of the previous one.
type RetryNotifier interface {
	OnRetry(attempt int, lastErr error)
}
