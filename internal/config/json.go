package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, using
// [Duration] so delays can be written as "1s" or "250ms".
type StructuredJSONConfig struct {
	App struct {
		LogFile         string `json:"log_file"`
		StorePassphrase string `json:"store_passphrase"`
	} `json:"app,omitempty"`

	Adapter struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"adapter,omitempty"`

	Retry struct {
		MaxAttempts int      `json:"max_attempts"`
		Backoff     string   `json:"backoff"`
		BackoffBase Duration `json:"backoff_base"`
		BackoffCap  Duration `json:"backoff_cap"`
	} `json:"retry,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`

	UserObject struct {
		APIKey string `json:"api_key"`
		ID     string `json:"id"`
		Type   string `json:"type"`
		EncKey string `json:"enc_key"`
		MacKey string `json:"mac_key"`
	} `json:"user_object,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:         jsonCfg.App.LogFile,
			StorePassphrase: jsonCfg.App.StorePassphrase,
		},
		Adapter: Adapter{
			Endpoint:       jsonCfg.Adapter.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			RateBurst:      jsonCfg.Adapter.RateBurst,
		},
		Retry: Retry{
			MaxAttempts: jsonCfg.Retry.MaxAttempts,
			Backoff:     jsonCfg.Retry.Backoff,
			BackoffBase: time.Duration(jsonCfg.Retry.BackoffBase),
			BackoffCap:  time.Duration(jsonCfg.Retry.BackoffCap),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{Concurrency: jsonCfg.Workers.Concurrency},
		Metrics: Metrics{Address: jsonCfg.Metrics.Address},
		UserObject: UserObject{
			APIKey: jsonCfg.UserObject.APIKey,
			ID:     jsonCfg.UserObject.ID,
			Type:   jsonCfg.UserObject.Type,
			EncKey: jsonCfg.UserObject.EncKey,
			MacKey: jsonCfg.UserObject.MacKey,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
