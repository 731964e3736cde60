package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/service"
	"github.com/MKhiriev/go-uo-client/internal/workers"
	"github.com/MKhiriev/go-uo-client/models"
)

var _ Client = (*App)(nil)

// App is one run of the command-line client.
type App struct {
	cfg        *config.ClientConfig
	services   *service.ClientServices
	background *workers.Workers
	pool       *workers.Pool
	out        io.Writer

	logger *logger.Logger
}

// NewApp wires a client run. Results are written to out, one line per
// input.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, background *workers.Workers, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil || services == nil {
		return nil, fmt.Errorf("client app: config and services are required")
	}
	if background == nil {
		background = workers.NewWorkers()
	}

	return &App{
		cfg:        cfg,
		services:   services,
		background: background,
		pool:       workers.NewPool(cfg.Workers.Concurrency),
		out:        out,
		logger:     logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	bgCtx, stop := context.WithCancel(ctx)
	bgDone := make(chan error, 1)
	go func() { bgDone <- a.background.Run(bgCtx) }()
	defer func() {
		stop()
		if err := <-bgDone; err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("background worker failed")
		}
	}()

	uo, err := a.userObject(ctx)
	if err != nil {
		return err
	}
	log := a.logger.ForUserObject(uo.Handle())

	if a.cfg.Call.Save {
		if err = a.services.Registry.Save(ctx, uo); err != nil {
			return fmt.Errorf("save user object: %w", err)
		}
		log.Info().Msg("user object saved to registry")
	}

	inputs, err := readInputs(a.cfg.Call)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		if a.cfg.Call.Save {
			return nil
		}
		// a bare call, e.g. to a function that takes no data
		inputs = [][]byte{nil}
	}

	call, err := a.operation(uo)
	if err != nil {
		return err
	}

	log.Debug().Str("op", a.cfg.Call.Op).Int("inputs", len(inputs)).Int("concurrency", a.pool.Concurrency()).Msg("running calls")
	results := workers.Map(ctx, a.pool, inputs, call)

	return a.report(results)
}

// operation returns the call made for every input of the run.
func (a *App) operation(uo *models.UserObject) (func(context.Context, []byte) ([]byte, error), error) {
	ops := a.services.OperationsService

	switch a.cfg.Call.Op {
	case config.OpProcessData:
		return func(ctx context.Context, data []byte) ([]byte, error) {
			resp, err := a.services.ProcessDataService.ProcessData(ctx, models.ProcessDataCall{UserObject: uo, Data: data})
			if err != nil {
				return nil, err
			}
			return resp.ProtectedData, nil
		}, nil
	case config.OpAESEncrypt:
		return func(ctx context.Context, data []byte) ([]byte, error) { return ops.AESEncrypt(ctx, uo, data) }, nil
	case config.OpAESDecrypt:
		return func(ctx context.Context, data []byte) ([]byte, error) { return ops.AESDecrypt(ctx, uo, data) }, nil
	case config.OpRSA:
		return func(ctx context.Context, data []byte) ([]byte, error) { return ops.RSA(ctx, uo, data) }, nil
	case config.OpHMAC:
		return func(ctx context.Context, data []byte) ([]byte, error) { return ops.HMAC(ctx, uo, data) }, nil
	case config.OpRandom:
		n := a.cfg.Call.RandomLength
		return func(ctx context.Context, _ []byte) ([]byte, error) { return ops.Random(ctx, uo, n) }, nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, a.cfg.Call.Op)
}

// userObject returns the configured user object, loading it from the
// registry when no communication keys were given.
func (a *App) userObject(ctx context.Context) (*models.UserObject, error) {
	cfg := a.cfg.UserObject
	if cfg.HasKeys {
		return &models.UserObject{
			ID:       cfg.ID,
			Type:     cfg.Type,
			CommKeys: cfg.CommKeys,
			APIKey:   cfg.APIKey,
		}, nil
	}

	uo, err := a.services.Registry.Get(ctx, cfg.APIKey, cfg.ID)
	if err != nil {
		return nil, fmt.Errorf("load user object %s/%s: %w", cfg.APIKey, models.HexID(cfg.ID), err)
	}
	return uo, nil
}

func (a *App) report(results []workers.Result[[]byte]) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Err(r.Err).Int("input", r.Index).Msg("call failed")
			fmt.Fprintf(a.out, "error: %v\n", r.Err)
			continue
		}
		fmt.Fprintln(a.out, hex.EncodeToString(r.Value))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCallsFailed, failed, len(results))
	}
	return nil
}
