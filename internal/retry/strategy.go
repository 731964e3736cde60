// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"sync"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// Strategy decides whether another attempt is allowed and how long to wait
// before it.
type Strategy interface {
	// ShouldContinue reports whether another attempt may start.
	ShouldContinue() bool

	// Wait returns the delay before the next attempt. Zero or negative
	// means no wait.
	Wait() time.Duration

	// OnFail records a failed attempt.
	OnFail(err error)

	// OnSuccess records a successful attempt.
	OnSuccess()

	// Reset restores the initial budget.
	Reset()

	// Attempts returns the number of failed attempts recorded since Reset.
	Attempts() int
}

// SimpleStrategy allows a fixed number of attempts with no wait between
// them. A negative budget means unlimited attempts.
type SimpleStrategy struct {
	mu          sync.Mutex
	maxAttempts int
	attempts    int
}

// NewSimpleStrategy returns a strategy allowing maxAttempts attempts.
func NewSimpleStrategy(maxAttempts int) *SimpleStrategy {
	return &SimpleStrategy{maxAttempts: maxAttempts}
}

// ShouldContinue implements [Strategy].
func (s *SimpleStrategy) ShouldContinue() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxAttempts < 0 || s.attempts < s.maxAttempts
}

// Wait implements [Strategy]. It is always zero.
func (s *SimpleStrategy) Wait() time.Duration { return 0 }

// OnFail implements [Strategy].
func (s *SimpleStrategy) OnFail(error) {
	s.mu.Lock()
	s.attempts++
	s.mu.Unlock()
}

// OnSuccess implements [Strategy].
func (s *SimpleStrategy) OnSuccess() {}

// Reset implements [Strategy].
func (s *SimpleStrategy) Reset() {
	s.mu.Lock()
	s.attempts = 0
	s.mu.Unlock()
}

// Attempts implements [Strategy].
func (s *SimpleStrategy) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// MaxAttempts returns the configured budget.
func (s *SimpleStrategy) MaxAttempts() int { return s.maxAttempts }

// BackoffFactory builds a fresh backoff sequence for one run. It is the
// extension point for delay policies: the ProcessData protocol defines no
// delay formula, so none is built in.
type BackoffFactory func() goretry.Backoff

// BackoffStrategy has the budget of [SimpleStrategy] and takes the delay
// before each retry from a backoff sequence. With a nil factory it never
// waits. The call also ends when the sequence stops.
type BackoffStrategy struct {
	SimpleStrategy

	newBackoff BackoffFactory
	backoff    goretry.Backoff
	next       time.Duration
	stopped    bool
}

// NewBackoffStrategy returns a strategy allowing maxAttempts attempts with
// delays from newBackoff.
func NewBackoffStrategy(maxAttempts int, newBackoff BackoffFactory) *BackoffStrategy {
	b := &BackoffStrategy{
		SimpleStrategy: SimpleStrategy{maxAttempts: maxAttempts},
		newBackoff:     newBackoff,
	}
	b.Reset()
	return b
}

// ShouldContinue implements [Strategy].
func (b *BackoffStrategy) ShouldContinue() bool {
	if !b.SimpleStrategy.ShouldContinue() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.stopped
}

// Wait implements [Strategy].
func (b *BackoffStrategy) Wait() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.next
}

// OnFail implements [Strategy]. It advances the backoff sequence.
func (b *BackoffStrategy) OnFail(err error) {
	b.SimpleStrategy.OnFail(err)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.backoff == nil {
		return
	}
	next, stop := b.backoff.Next()
	if stop {
		b.stopped = true
		return
	}
	b.next = next
}

// Reset implements [Strategy]. It starts a new backoff sequence.
func (b *BackoffStrategy) Reset() {
	b.SimpleStrategy.Reset()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.next = 0
	b.stopped = false
	b.backoff = nil
	if b.newBackoff != nil {
		b.backoff = b.newBackoff()
	}
}

// The factories below adapt ready-made go-retry schedules. They are opt-in
// conveniences, not part of the protocol; callers that need a specific
// policy pass their own [BackoffFactory].

// ConstantBackoff returns a factory of constant delays.
func ConstantBackoff(d time.Duration) BackoffFactory {
	return func() goretry.Backoff { return goretry.NewConstant(d) }
}

// ExponentialBackoff returns a factory of doubling delays starting at base,
// capped at limit when limit is positive.
func ExponentialBackoff(base, limit time.Duration) BackoffFactory {
	return func() goretry.Backoff { return capped(limit, goretry.NewExponential(base)) }
}

// FibonacciBackoff returns a factory of Fibonacci delays starting at base,
// capped at limit when limit is positive.
func FibonacciBackoff(base, limit time.Duration) BackoffFactory {
	return func() goretry.Backoff { return capped(limit, goretry.NewFibonacci(base)) }
}

func capped(limit time.Duration, b goretry.Backoff) goretry.Backoff {
	if limit <= 0 {
		return b
	}
	return goretry.WithCappedDuration(limit, b)
}
