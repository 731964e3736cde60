// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
)

// UserObject is the client-side handle of a remote HSM-resident user object.
// It carries only what the ProcessData protocol needs: the object id, its
// type descriptor, the communication keys and the API key it is bound to.
type UserObject struct {
	// ID is the 32-bit user object identifier assigned by the service.
	ID uint32 `json:"id"`

	// Type is the packed type descriptor selecting the remote function and
	// key generation policies.
	Type uotype.Descriptor `json:"type"`

	// CommKeys protect ProcessData traffic of this object.
	CommKeys crypto.CommKeys `json:"comm_keys"`

	// APIKey is the API key the object is bound to.
	APIKey string `json:"api_key"`

	// CreatedAt is set by the local registry when the record is stored.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Handle returns the printable "apiKey/id" form used in logs.
func (u UserObject) Handle() string {
	return u.APIKey + "/" + HexID(u.ID)
}

// HexID renders a user object id as the 8-digit hex string used on the wire.
func HexID(id uint32) string {
	return fmt.Sprintf("%08x", id)
}

// UserObjectRecord is the persisted form of a [UserObject] in the local
// registry. Communication keys are stored sealed, never in the clear.
type UserObjectRecord struct {
	APIKey string
	ID     uint32

	// Type is the descriptor as 16 hex digits, so the full 64-bit value
	// survives databases without unsigned integers.
	Type string

	// SealedKeys is base64(salt ‖ nonce ‖ ciphertext) of the key pair.
	SealedKeys string

	CreatedAt time.Time
	UpdatedAt time.Time
}
