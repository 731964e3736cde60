package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultMaxAttempts    = 3
	defaultConcurrency    = 4
	defaultRateBurst      = 1
)

// Backoff kinds accepted by [ClientRetry.Backoff].
const (
	BackoffNone        = ""
	BackoffConstant    = "constant"
	BackoffExponential = "exponential"
	BackoffFibonacci   = "fibonacci"
)

// Typed operations accepted by [ClientCall.Op]. OpProcessData sends the
// input as is.
const (
	OpProcessData = ""
	OpAESEncrypt  = "aes-encrypt"
	OpAESDecrypt  = "aes-decrypt"
	OpRSA         = "rsa"
	OpHMAC        = "hmac"
	OpRandom      = "random"

	maxRandomLength = 0xffff
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is where log lines go; empty means stderr.
	LogFile string
	// StorePassphrase seals communication keys stored in the registry.
	StorePassphrase string
}

// ClientAdapter holds settings used by the client transport layer.
type ClientAdapter struct {
	// Endpoint is the base URL of the remote service.
	Endpoint string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// RateLimit is the sustained request rate per second; zero disables it.
	RateLimit float64
	// RateBurst is the token bucket size when RateLimit is set.
	RateBurst int
}

// ClientRetry holds the retry policy of ProcessData calls.
type ClientRetry struct {
	// MaxAttempts is the attempt budget; negative means unlimited.
	MaxAttempts int
	// Backoff is one of the Backoff* kinds.
	Backoff string
	// BackoffBase is the first delay between attempts.
	BackoffBase time.Duration
	// BackoffCap caps growing delays; zero means no cap.
	BackoffCap time.Duration
}

// ClientDB contains registry database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL; empty disables the registry.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds registry database settings.
	DB ClientDB
}

// ClientWorkers contains batch execution settings.
type ClientWorkers struct {
	// Concurrency is the number of calls run at once.
	Concurrency int
}

// ClientMetrics contains the Prometheus listener settings.
type ClientMetrics struct {
	// Address is the listener address; empty disables it.
	Address string
}

// ClientUserObject is the parsed user object description.
type ClientUserObject struct {
	APIKey string
	ID     uint32
	Type   uotype.Descriptor

	// CommKeys is set when HasKeys is true.
	CommKeys crypto.CommKeys
	// HasKeys is false when the object must be loaded from the registry.
	HasKeys bool
}

// ClientCall contains the input of one CLI run.
type ClientCall struct {
	Input     string
	InputFile string
	Save      bool

	// Op is one of the Op* constants.
	Op string
	// RandomLength is used by OpRandom only.
	RandomLength int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App        ClientApp
	Adapter    ClientAdapter
	Retry      ClientRetry
	Storage    ClientStorage
	Workers    ClientWorkers
	Metrics    ClientMetrics
	UserObject ClientUserObject
	Call       ClientCall
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields to the
// client runtime, applies defaults, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	uo, err := parseUserObject(cfg.UserObject)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:         cfg.App.LogFile,
			StorePassphrase: cfg.App.StorePassphrase,
		},
		Adapter: ClientAdapter{
			Endpoint:       cfg.Adapter.Endpoint,
			RequestTimeout: withDefault(cfg.Adapter.RequestTimeout, defaultRequestTimeout),
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      withDefault(cfg.Adapter.RateBurst, defaultRateBurst),
		},
		Retry: ClientRetry{
			MaxAttempts: withDefault(cfg.Retry.MaxAttempts, defaultMaxAttempts),
			Backoff:     strings.ToLower(strings.TrimSpace(cfg.Retry.Backoff)),
			BackoffBase: cfg.Retry.BackoffBase,
			BackoffCap:  cfg.Retry.BackoffCap,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers:    ClientWorkers{Concurrency: withDefault(cfg.Workers.Concurrency, defaultConcurrency)},
		Metrics:    ClientMetrics{Address: cfg.Metrics.Address},
		UserObject: uo,
		Call: ClientCall{
			Input:     cfg.Call.Input,
			InputFile: cfg.Call.InputFile,
			Save:      cfg.Call.Save,

			Op:           strings.ToLower(strings.TrimSpace(cfg.Call.Op)),
			RandomLength: cfg.Call.RandomLength,
		},
	}

	return clientCfg, clientCfg.validate()
}

func parseUserObject(cfg UserObject) (ClientUserObject, error) {
	uo := ClientUserObject{APIKey: strings.TrimSpace(cfg.APIKey)}

	if cfg.ID != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(cfg.ID), 0, 32)
		if err != nil {
			return uo, fmt.Errorf("%w: id %q: %v", ErrInvalidUserObjectConfigs, cfg.ID, err)
		}
		uo.ID = uint32(id)
	}

	if cfg.Type != "" {
		desc, err := uotype.Parse(cfg.Type)
		if err != nil {
			return uo, fmt.Errorf("%w: type: %v", ErrInvalidUserObjectConfigs, err)
		}
		uo.Type = desc
	}

	if cfg.EncKey == "" && cfg.MacKey == "" {
		return uo, nil
	}
	keys, err := crypto.ParseCommKeysHex(cfg.EncKey, cfg.MacKey)
	if err != nil {
		return uo, fmt.Errorf("%w: %v", ErrInvalidUserObjectConfigs, err)
	}
	uo.CommKeys = keys
	uo.HasKeys = true

	return uo, nil
}

func withDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
