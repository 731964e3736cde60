package service

import (
	"github.com/MKhiriev/go-uo-client/internal/adapter"
	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/store"
)

// ClientServices groups the services the client works with.
type ClientServices struct {
	ProcessDataService ProcessDataService
	OperationsService  OperationsService
	Registry           UserObjectRegistry
}

// NewClientServices wires the services. storages may be nil, in which case
// every registry call returns [ErrRegistryDisabled].
func NewClientServices(cfg *config.ClientConfig, serviceAdapter adapter.ServiceAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	processData := NewProcessDataService(serviceAdapter, NewStrategyFactory(cfg.Retry), logger)

	var registry UserObjectRegistry = disabledRegistry{}
	if storages != nil {
		registry = NewUserObjectRegistry(storages.UserObjectRepository, crypto.NewKeyWrapService(nil), cfg.App.StorePassphrase, logger)
	}

	return &ClientServices{
		ProcessDataService: processData,
		OperationsService:  NewOperationsService(processData),
		Registry:           registry,
	}
}
