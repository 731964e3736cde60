// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// source-independent invariants. Cross-field rules live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.Endpoint == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Retry.Backoff {
	case BackoffNone:
	case BackoffConstant, BackoffExponential, BackoffFibonacci:
		if cfg.Retry.BackoffBase <= 0 {
			return fmt.Errorf("%w: %s backoff needs a base delay", ErrInvalidRetryConfigs, cfg.Retry.Backoff)
		}
	default:
		return fmt.Errorf("%w: unknown backoff %q", ErrInvalidRetryConfigs, cfg.Retry.Backoff)
	}
	if cfg.Retry.BackoffCap < 0 {
		return ErrInvalidRetryConfigs
	}

	dsn := strings.TrimSpace(cfg.Storage.DB.DSN)
	if dsn != "" && cfg.App.StorePassphrase == "" {
		return fmt.Errorf("%w: registry needs a store passphrase", ErrInvalidStorageConfigs)
	}
	if cfg.Call.Save && dsn == "" {
		return fmt.Errorf("%w: save needs a registry DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.Concurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.UserObject.APIKey == "" {
		return fmt.Errorf("%w: missing api key", ErrInvalidUserObjectConfigs)
	}
	if !cfg.UserObject.HasKeys && dsn == "" {
		return fmt.Errorf("%w: no communication keys and no registry", ErrInvalidUserObjectConfigs)
	}

	return cfg.Call.validate()
}

func (c ClientCall) validate() error {
	switch c.Op {
	case OpProcessData, OpAESEncrypt, OpAESDecrypt, OpRSA, OpHMAC:
		if c.RandomLength != 0 {
			return fmt.Errorf("%w: length is only used by %s", ErrInvalidCallConfigs, OpRandom)
		}
	case OpRandom:
		if c.RandomLength < 1 || c.RandomLength > maxRandomLength {
			return fmt.Errorf("%w: random length %d outside 1..%d", ErrInvalidCallConfigs, c.RandomLength, maxRandomLength)
		}
		if c.Input != "" || c.InputFile != "" {
			return fmt.Errorf("%w: %s takes no input", ErrInvalidCallConfigs, OpRandom)
		}
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidCallConfigs, c.Op)
	}
	return nil
}
