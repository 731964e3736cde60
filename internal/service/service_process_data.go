// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-uo-client/internal/adapter"
	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/metrics"
	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/internal/retry"
	"github.com/MKhiriev/go-uo-client/internal/utils"
	"github.com/MKhiriev/go-uo-client/models"
)

// StrategyFactory returns a fresh strategy for one call.
type StrategyFactory func() retry.Strategy

// NewStrategyFactory builds strategies from the retry section of the client
// configuration. The default is [retry.SimpleStrategy]: a fixed budget with
// attempts following each other at once. A backoff kind selects one of the
// opt-in go-retry schedules; unknown kinds fall back to the default.
func NewStrategyFactory(cfg config.ClientRetry) StrategyFactory {
	switch cfg.Backoff {
	case config.BackoffConstant:
		return func() retry.Strategy {
			return retry.NewBackoffStrategy(cfg.MaxAttempts, retry.ConstantBackoff(cfg.BackoffBase))
		}
	case config.BackoffExponential:
		return func() retry.Strategy {
			return retry.NewBackoffStrategy(cfg.MaxAttempts, retry.ExponentialBackoff(cfg.BackoffBase, cfg.BackoffCap))
		}
	case config.BackoffFibonacci:
		return func() retry.Strategy {
			return retry.NewBackoffStrategy(cfg.MaxAttempts, retry.FibonacciBackoff(cfg.BackoffBase, cfg.BackoffCap))
		}
	default:
		return func() retry.Strategy {
			return retry.NewSimpleStrategy(cfg.MaxAttempts)
		}
	}
}

type processDataService struct {
	adapter     adapter.ServiceAdapter
	newStrategy StrategyFactory
	requestIDs  *utils.UUIDGenerator
	random      io.Reader

	logger *logger.Logger
}

// NewProcessDataService constructs a [ProcessDataService] sending requests
// through serviceAdapter. Every call gets its own engine and strategy.
func NewProcessDataService(serviceAdapter adapter.ServiceAdapter, newStrategy StrategyFactory, logger *logger.Logger) ProcessDataService {
	return &processDataService{
		adapter:     serviceAdapter,
		newStrategy: newStrategy,
		requestIDs:  utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *processDataService) ProcessData(ctx context.Context, call models.ProcessDataCall) (*models.ParsedResponse, error) {
	engine, err := s.newEngine(call)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}

func (s *processDataService) ProcessDataAsync(ctx context.Context, call models.ProcessDataCall) *retry.Handle[*models.ParsedResponse] {
	engine, err := s.newEngine(call)
	if err != nil {
		// an engine whose only attempt aborts reports the error through the handle
		engine = retry.NewEngine[*models.ParsedResponse](
			retry.JobFunc[*models.ParsedResponse](func(context.Context) (*models.ParsedResponse, error) {
				return nil, retry.Abort(err)
			}),
			retry.NewSimpleStrategy(1),
			s.logger,
		)
	}
	return engine.RunAsync(ctx)
}

func (s *processDataService) newEngine(call models.ProcessDataCall) (*retry.Engine[*models.ParsedResponse], error) {
	if call.UserObject == nil {
		return nil, fmt.Errorf("%w: no user object", ErrInvalidUserObject)
	}

	uo := call.UserObject
	fn := uo.Type.Function().Name()
	log := s.logger.ForUserObject(uo.Handle())

	job := &processDataJob{
		call:       call,
		function:   fn,
		adapter:    s.adapter,
		requestIDs: s.requestIDs,
		random:     s.random,
		logger:     log,
	}
	engine := retry.NewEngine[*models.ParsedResponse](job, s.newStrategy(), log)

	start := time.Now()
	engine.OnSuccess(func(*models.ParsedResponse) {
		metrics.RecordCall(fn, metrics.OutcomeSuccess, time.Since(start).Seconds())
	})
	engine.OnFailure(func(err error) {
		metrics.RecordCall(fn, callOutcome(err), time.Since(start).Seconds())
		log.Warn().Err(err).Str("func", "processDataService.ProcessData").Msg("process data call did not succeed")
	})

	return engine, nil
}

// processDataJob is one attempt of a ProcessData call. Every attempt builds a
// new request with a fresh nonce.
type processDataJob struct {
	call       models.ProcessDataCall
	function   string
	adapter    adapter.ServiceAdapter
	requestIDs *utils.UUIDGenerator
	random     io.Reader

	logger *logger.Logger
}

func (j *processDataJob) Run(ctx context.Context) (*models.ParsedResponse, error) {
	uo := j.call.UserObject

	req, err := protocol.NewRequestBuilder(uo).
		WithPlainData(j.call.PlainData).
		WithData(j.call.Data).
		WithRandom(j.random).
		Build()
	if err != nil {
		metrics.RecordAttempt(j.function, metrics.OutcomeAborted)
		return nil, retry.Abort(fmt.Errorf("build request: %w", err))
	}

	requestID := j.requestIDs.Generate()
	body, err := j.adapter.ProcessData(utils.WithRequestID(ctx, requestID), uo.APIKey, requestID, req.Envelope(requestID))
	if err != nil {
		return nil, j.fail(err)
	}

	resp, err := protocol.NewResponseParser(uo).Parse(body)
	if err != nil {
		return nil, j.fail(err)
	}
	if err = req.Verify(resp); err != nil {
		return nil, j.fail(err)
	}

	metrics.RecordAttempt(j.function, metrics.OutcomeSuccess)
	return resp, nil
}

func (j *processDataJob) fail(err error) error {
	classified, outcome := classifyAttemptError(err)
	metrics.RecordAttempt(j.function, outcome)
	if outcome == metrics.OutcomeAborted {
		j.logger.Error().Err(err).Str("func", "processDataJob.Run").Msg("attempt failed permanently")
	}
	return classified
}

// OnRetry implements [retry.RetryNotifier].
func (j *processDataJob) OnRetry(attempt int, lastErr error) {
	j.logger.Info().
		Int("attempt", attempt).
		AnErr("last_error", lastErr).
		Str("function", j.function).
		Msg("retrying process data")
}
