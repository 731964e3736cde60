// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// NonceSize is the length of the freshness nonce in bytes.
const NonceSize = 8

// Nonce is the per-request freshness value. The service echoes it back with
// every byte incremented by one.
type Nonce [NonceSize]byte

// GenerateNonce reads a fresh nonce from random. A nil reader falls back to
// [crypto/rand.Reader].
func GenerateNonce(random io.Reader) (Nonce, error) {
	if random == nil {
		random = rand.Reader
	}

	var n Nonce
	if _, err := io.ReadFull(random, n[:]); err != nil {
		return Nonce{}, fmt.Errorf("generate nonce: %w", err)
	}
	return n, nil
}

// Mangle returns the nonce the service is expected to send back: every byte
// plus one, modulo 256.
func (n Nonce) Mangle() Nonce {
	for i := range n {
		n[i]++
	}
	return n
}

// Demangle is the exact inverse of [Nonce.Mangle].
func (n Nonce) Demangle() Nonce {
	for i := range n {
		n[i]--
	}
	return n
}

func (n Nonce) String() string {
	return hex.EncodeToString(n[:])
}
