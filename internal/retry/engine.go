// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-uo-client/internal/logger"
)

// State is the lifecycle state of an [Engine].
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateWaiting
	StateSucceeded
	StateFailed
	StateAborted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateAborted:
		return "aborted"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Engine runs a [Job] until it succeeds, aborts, is cancelled or the
// [Strategy] gives up. An engine serves one logical call at a time and may
// be reused once the previous run is over.
type Engine[T any] struct {
	job      Job[T]
	strategy Strategy
	logger   *logger.Logger

	mu        sync.Mutex
	state     State
	attempts  int
	lastErr   error
	cancelled bool
	cancelCh  chan struct{}
	runNowCh  chan struct{}
	onSuccess []func(T)
	onFailure []func(error)
}

// NewEngine returns an idle engine. A nil logger discards output.
func NewEngine[T any](job Job[T], strategy Strategy, log *logger.Logger) *Engine[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine[T]{
		job:      job,
		strategy: strategy,
		logger:   log,
		cancelCh: make(chan struct{}),
		runNowCh: make(chan struct{}, 1),
	}
}

// OnSuccess registers fn to be called with the result when a run succeeds.
func (e *Engine[T]) OnSuccess(fn func(T)) {
	e.mu.Lock()
	e.onSuccess = append(e.onSuccess, fn)
	e.mu.Unlock()
}

// OnFailure registers fn to be called with the terminal [*Error] when a run
// does not succeed.
func (e *Engine[T]) OnFailure(fn func(error)) {
	e.mu.Lock()
	e.onFailure = append(e.onFailure, fn)
	e.mu.Unlock()
}

// State returns the current state.
func (e *Engine[T]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Attempts returns the number of attempts started by the current or last
// run.
func (e *Engine[T]) Attempts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempts
}

// LastError returns the last job error of the current or last run.
func (e *Engine[T]) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Reset returns a finished engine to [StateIdle] and restores the strategy
// budget. It fails with [ErrAlreadyRunning] while a run is in progress.
func (e *Engine[T]) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isActive() {
		return ErrAlreadyRunning
	}
	e.resetLocked()
	e.state = StateIdle
	return nil
}

// Cancel stops the current run at the next boundary: a pending wait ends
// and no further attempt starts. An attempt in flight is not interrupted.
func (e *Engine[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancelled || !e.isActive() {
		return
	}
	e.cancelled = true
	close(e.cancelCh)
}

// RunNow ends a pending wait so the next attempt starts immediately.
func (e *Engine[T]) RunNow() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateWaiting {
		return
	}
	select {
	case e.runNowCh <- struct{}{}:
	default:
	}
}

// Run executes the call synchronously. It returns the job result, or an
// [*Error] matching ErrRetryFailed, ErrRetryAborted or ErrRetryCancelled.
// Cancelling ctx cancels the run.
func (e *Engine[T]) Run(ctx context.Context) (T, error) {
	if err := e.start(); err != nil {
		var zero T
		return zero, err
	}
	res, err := e.loop(ctx)
	e.finish(res, err)
	return res, err
}

// RunAsync executes the call in a new goroutine and returns at once.
func (e *Engine[T]) RunAsync(ctx context.Context) *Handle[T] {
	h := &Handle[T]{engine: e, done: make(chan struct{})}
	if err := e.start(); err != nil {
		h.err = err
		close(h.done)
		return h
	}

	go func() {
		defer close(h.done)
		res, err := e.loop(ctx)
		h.result, h.err = res, err
		e.finish(res, err)
	}()
	return h
}

func (e *Engine[T]) start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isActive() {
		return ErrAlreadyRunning
	}
	e.resetLocked()
	e.state = StateRunning
	return nil
}

func (e *Engine[T]) resetLocked() {
	e.strategy.Reset()
	e.attempts = 0
	e.lastErr = nil
	e.cancelled = false
	e.cancelCh = make(chan struct{})
	e.drainRunNowLocked()
}

// drainRunNowLocked drops a RunNow token left over from a wait that had
// already ended, so it cannot shorten a later wait.
func (e *Engine[T]) drainRunNowLocked() {
	select {
	case <-e.runNowCh:
	default:
	}
}

func (e *Engine[T]) isActive() bool {
	return e.state == StateRunning || e.state == StateWaiting
}

func (e *Engine[T]) loop(ctx context.Context) (T, error) {
	var (
		zero    T
		lastErr error
		attempt int
	)

	for {
		if e.isCancelled(ctx) {
			return zero, &Error{Kind: ErrRetryCancelled, Attempts: attempt, Last: lastErr}
		}
		if !e.strategy.ShouldContinue() {
			return zero, &Error{Kind: ErrRetryFailed, Attempts: attempt, Last: lastErr}
		}

		if attempt > 0 {
			if d := e.strategy.Wait(); d > 0 {
				e.logger.Debug().Int("attempt", attempt+1).Dur("wait", d).Msg("waiting before retry")
				if !e.wait(ctx, d) {
					return zero, &Error{Kind: ErrRetryCancelled, Attempts: attempt, Last: lastErr}
				}
			}
			if n, ok := e.job.(RetryNotifier); ok {
				n.OnRetry(attempt+1, lastErr)
			}
		}

		attempt++
		e.setAttempts(attempt)

		res, err := e.job.Run(ctx)
		if err == nil {
			e.strategy.OnSuccess()
			e.logger.Debug().Int("attempt", attempt).Msg("attempt succeeded")
			return res, nil
		}

		lastErr = unwrapAbort(err)
		e.setLastErr(lastErr)

		if IsAbort(err) {
			e.logger.Debug().Err(lastErr).Int("attempt", attempt).Msg("attempt aborted")
			return zero, &Error{Kind: ErrRetryAborted, Attempts: attempt, Last: lastErr}
		}

		e.logger.Debug().Err(lastErr).Int("attempt", attempt).Msg("attempt failed")
		e.strategy.OnFail(lastErr)
	}
}

// wait blocks for d unless RunNow, Cancel or ctx end it first. It reports
// whether the run should go on.
func (e *Engine[T]) wait(ctx context.Context, d time.Duration) bool {
	e.mu.Lock()
	e.drainRunNowLocked()
	e.state = StateWaiting
	cancelCh := e.cancelCh
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.state = StateRunning
		e.drainRunNowLocked()
		e.mu.Unlock()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-e.runNowCh:
		return true
	case <-cancelCh:
		return false
	case <-ctx.Done():
		return false
	}
}

func (e *Engine[T]) isCancelled(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancelled
}

func (e *Engine[T]) setAttempts(n int) {
	e.mu.Lock()
	e.attempts = n
	e.mu.Unlock()
}

func (e *Engine[T]) setLastErr(err error) {
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()
}

func (e *Engine[T]) finish(res T, err error) {
	e.mu.Lock()
	switch {
	case err == nil:
		e.state = StateSucceeded
	case errors.Is(err, ErrRetryAborted):
		e.state = StateAborted
	case errors.Is(err, ErrRetryCancelled):
		e.state = StateCancelled
	default:
		e.state = StateFailed
	}
	onSuccess := append([]func(T){}, e.onSuccess...)
	onFailure := append([]func(error){}, e.onFailure...)
	e.mu.Unlock()

	if err == nil {
		for _, fn := range onSuccess {
			fn(res)
		}
		return
	}

	e.logger.Debug().Err(err).Msg("call finished without success")
	for _, fn := range onFailure {
		fn(err)
	}
}

// Handle observes and controls a run started with [Engine.RunAsync].
type Handle[T any] struct {
	engine *Engine[T]
	done   chan struct{}
	result T
	err    error
}

// IsRunning reports whether the run is still in progress.
func (h *Handle[T]) IsRunning() bool {
	return !h.IsDone()
}

// IsDone reports whether the run has finished.
func (h *Handle[T]) IsDone() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the run finishes.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Cancel cancels the run. See [Engine.Cancel].
func (h *Handle[T]) Cancel() { h.engine.Cancel() }

// RunNow ends a pending wait. See [Engine.RunNow].
func (h *Handle[T]) RunNow() { h.engine.RunNow() }

// Result waits for the run to finish and returns its outcome.
func (h *Handle[T]) Result() (T, error) {
	<-h.done
	return h.result, h.err
}
