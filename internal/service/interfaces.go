// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-uo-client/internal/retry"
	"github.com/MKhiriev/go-uo-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProcessDataService runs ProcessData calls against user objects, retrying
// each call under the configured strategy.
type ProcessDataService interface {
	// ProcessData blocks until the call succeeds or ends. A call that does
	// not succeed returns a [*retry.Error]; its last error is a
	// [*protocol.StatusError] for service statuses.
	ProcessData(ctx context.Context, call models.ProcessDataCall) (*models.ParsedResponse, error)

	// ProcessDataAsync starts the call in the background and returns a
	// handle to observe, cancel or hurry it.
	ProcessDataAsync(ctx context.Context, call models.ProcessDataCall) *retry.Handle[*models.ParsedResponse]
}

// UserObjectRegistry keeps user objects in the local registry with their
// communication keys sealed under the store passphrase.
type UserObjectRegistry interface {
	// Save stores uo, replacing a stored object with the same API key and id.
	Save(ctx context.Context, uo *models.UserObject) error

	// Get loads and unseals one user object.
	Get(ctx context.Context, apiKey string, id uint32) (*models.UserObject, error)

	// List loads every user object bound to apiKey, ordered by id.
	List(ctx context.Context, apiKey string) ([]*models.UserObject, error)

	// Delete removes one user object.
	Delete(ctx context.Context, apiKey string, id uint32) error
}

// OperationsService offers typed operations on top of [ProcessDataService].
// Every operation first checks that the user object's function fits it and
// returns [ErrFunctionMismatch] otherwise.
type OperationsService interface {
	AESEncrypt(ctx context.Context, uo *models.UserObject, plaintext []byte) ([]byte, error)
	AESDecrypt(ctx context.Context, uo *models.UserObject, ciphertext []byte) ([]byte, error)
	RSA(ctx context.Context, uo *models.UserObject, input []byte) ([]byte, error)
	HMAC(ctx context.Context, uo *models.UserObject, data []byte) ([]byte, error)
	Random(ctx context.Context, uo *models.UserObject, n int) ([]byte, error)
}
