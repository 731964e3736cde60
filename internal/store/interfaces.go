// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists user objects in the local registry. The registry
// runs on SQLite for a single workstation or on PostgreSQL when several
// clients share it; the dialect is picked from the DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-uo-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_object_repository_mock.go -package=mock

// UserObjectRepository is the low-level registry of user objects, keyed by
// API key and user object id. It stores records as given and never sees
// communication keys in the clear.
type UserObjectRepository interface {
	// Create inserts rec. Returns [ErrUserObjectAlreadyExists] when a record
	// with the same key exists.
	Create(ctx context.Context, rec models.UserObjectRecord) error

	// Update replaces type, sealed keys and update time of an existing
	// record. Returns [ErrUserObjectNotFound] when there is none.
	Update(ctx context.Context, rec models.UserObjectRecord) error

	// Get returns one record or [ErrUserObjectNotFound].
	Get(ctx context.Context, apiKey string, id uint32) (models.UserObjectRecord, error)

	// List returns all records of apiKey ordered by id.
	List(ctx context.Context, apiKey string) ([]models.UserObjectRecord, error)

	// Delete removes one record or returns [ErrUserObjectNotFound].
	Delete(ctx context.Context, apiKey string, id uint32) error
}
