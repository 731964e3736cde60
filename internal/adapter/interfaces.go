// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote HSM service.
//
// The primary abstraction is [ServiceAdapter], which decouples call
// orchestration from HTTP. The package ships a resty-based implementation
// ([NewHTTPServiceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for
// 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-uo-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_adapter_mock.go -package=mock

// ServiceAdapter sends ProcessData envelopes to the remote service.
type ServiceAdapter interface {
	// ProcessData posts req for the user object bound to apiKey. requestID
	// is the envelope correlation id that also appears in the URL path.
	//
	// On a 2xx answer it returns the raw response body, leaving envelope
	// decoding to the protocol layer. Non-2xx answers are mapped to the
	// sentinels of this package; network failures wrap [ErrTransport].
	ProcessData(ctx context.Context, apiKey, requestID string, req models.ProcessDataRequest) ([]byte, error)
}
