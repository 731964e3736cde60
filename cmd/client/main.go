package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-uo-client/internal/adapter"
	"github.com/MKhiriev/go-uo-client/internal/client"
	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/metrics"
	"github.com/MKhiriev/go-uo-client/internal/service"
	"github.com/MKhiriev/go-uo-client/internal/store"
	"github.com/MKhiriev/go-uo-client/internal/workers"
	"github.com/MKhiriev/go-uo-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries results only
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	bootLog := logger.NewLogger("uo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("uo-client", cfg.App.LogFile)

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		if errors.Is(err, client.ErrCallsFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serviceAdapter, err := adapter.NewHTTPServiceAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create service adapter: %w", err)
	}

	var storages *store.ClientStorages
	if cfg.Storage.DB.DSN != "" {
		storages, err = store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("create registry storage: %w", err)
		}
		defer storages.Close()
	}

	services := service.NewClientServices(cfg, serviceAdapter, storages, log)

	background := workers.NewWorkers()
	if cfg.Metrics.Address != "" {
		background.Add(metrics.NewServer(cfg.Metrics.Address, log))
	} else {
		metrics.Disable()
	}

	app, err := client.NewApp(cfg, services, background, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}
