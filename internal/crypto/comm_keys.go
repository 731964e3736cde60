// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

// CommKeySize is the length of each communication key in bytes (AES-256).
const CommKeySize = 32

// CommKeys is the pair of 256-bit keys protecting ProcessData traffic of one
// user object: EncKey for AES-CBC and MacKey for the CBC-MAC.
//
// The zero value is not usable. A CommKeys value owns private copies of its
// key material, so it cannot be changed after construction.
type CommKeys struct {
	enc []byte
	mac []byte
}

// NewCommKeys copies enc and mac into a new [CommKeys]. Returns [ErrKey] if
// either key is not exactly [CommKeySize] bytes.
func NewCommKeys(enc, mac []byte) (CommKeys, error) {
	if len(enc) != CommKeySize {
		return CommKeys{}, fmt.Errorf("%w: encryption key is %d bytes, want %d", ErrKey, len(enc), CommKeySize)
	}
	if len(mac) != CommKeySize {
		return CommKeys{}, fmt.Errorf("%w: mac key is %d bytes, want %d", ErrKey, len(mac), CommKeySize)
	}

	return CommKeys{
		enc: bytes.Clone(enc),
		mac: bytes.Clone(mac),
	}, nil
}

// GenerateCommKeys reads a fresh key pair from random. A nil reader falls
// back to [crypto/rand.Reader].
func GenerateCommKeys(random io.Reader) (CommKeys, error) {
	if random == nil {
		random = rand.Reader
	}

	buf := make([]byte, 2*CommKeySize)
	if _, err := io.ReadFull(random, buf); err != nil {
		return CommKeys{}, fmt.Errorf("generate communication keys: %w", err)
	}

	return CommKeys{enc: buf[:CommKeySize:CommKeySize], mac: buf[CommKeySize:]}, nil
}

// ParseCommKeysHex decodes a key pair written as two hex strings.
func ParseCommKeysHex(encHex, macHex string) (CommKeys, error) {
	enc, err := hex.DecodeString(encHex)
	if err != nil {
		return CommKeys{}, fmt.Errorf("%w: decode encryption key: %v", ErrKey, err)
	}
	mac, err := hex.DecodeString(macHex)
	if err != nil {
		return CommKeys{}, fmt.Errorf("%w: decode mac key: %v", ErrKey, err)
	}

	return NewCommKeys(enc, mac)
}

// IsUsable reports whether both keys are present with the right length.
func (k CommKeys) IsUsable() bool {
	return len(k.enc) == CommKeySize && len(k.mac) == CommKeySize
}

// EncKey returns a copy of the encryption key.
func (k CommKeys) EncKey() []byte { return bytes.Clone(k.enc) }

// MacKey returns a copy of the MAC key.
func (k CommKeys) MacKey() []byte { return bytes.Clone(k.mac) }

// Equal reports whether both pairs hold the same key material.
func (k CommKeys) Equal(other CommKeys) bool {
	return bytes.Equal(k.enc, other.enc) && bytes.Equal(k.mac, other.mac)
}

// String never prints key material.
func (k CommKeys) String() string {
	if !k.IsUsable() {
		return "CommKeys(unusable)"
	}
	return "CommKeys(redacted)"
}

// MarshalBinary returns EncKey ‖ MacKey.
func (k CommKeys) MarshalBinary() ([]byte, error) {
	if !k.IsUsable() {
		return nil, ErrKey
	}

	out := make([]byte, 0, 2*CommKeySize)
	out = append(out, k.enc...)
	return append(out, k.mac...), nil
}

// UnmarshalBinary is the inverse of [CommKeys.MarshalBinary].
func (k *CommKeys) UnmarshalBinary(data []byte) error {
	if len(data) != 2*CommKeySize {
		return fmt.Errorf("%w: serialized pair is %d bytes, want %d", ErrKey, len(data), 2*CommKeySize)
	}

	keys, err := NewCommKeys(data[:CommKeySize], data[CommKeySize:])
	if err != nil {
		return err
	}
	*k = keys
	return nil
}

type commKeysJSON struct {
	Enc string `json:"enc"`
	Mac string `json:"mac"`
}

// MarshalJSON encodes the pair as {"enc": hex, "mac": hex}.
func (k CommKeys) MarshalJSON() ([]byte, error) {
	if !k.IsUsable() {
		return nil, ErrKey
	}
	return json.Marshal(commKeysJSON{
		Enc: hex.EncodeToString(k.enc),
		Mac: hex.EncodeToString(k.mac),
	})
}

// UnmarshalJSON is the inverse of [CommKeys.MarshalJSON].
func (k *CommKeys) UnmarshalJSON(data []byte) error {
	var v commKeysJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrKey, err)
	}

	keys, err := ParseCommKeysHex(v.Enc, v.Mac)
	if err != nil {
		return err
	}
	*k = keys
	return nil
}
