// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// keyWrapService is the private implementation of [KeyWrapService].
type keyWrapService struct {
	random io.Reader

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyWrapService constructs a [KeyWrapService] reading salts and nonces
// from random (nil means [crypto/rand.Reader]) and using the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyWrapService(random io.Reader) KeyWrapService {
	if random == nil {
		random = rand.Reader
	}
	return &keyWrapService{
		random:       random,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyWrapService].
func (k *keyWrapService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKEK implements [KeyWrapService].
func (k *keyWrapService) DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Wrap implements [KeyWrapService]. A random 12-byte nonce is prepended to
// the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyWrapService) Wrap(keys CommKeys, kek []byte) ([]byte, error) {
	plain, err := keys.MarshalBinary()
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plain, nil), nil
}

// Unwrap implements [KeyWrapService].
func (k *keyWrapService) Unwrap(blob, kek []byte) (CommKeys, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return CommKeys{}, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return CommKeys{}, fmt.Errorf("%w: ciphertext too short", ErrUnwrap)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return CommKeys{}, fmt.Errorf("%w: %v", ErrUnwrap, err)
	}

	var keys CommKeys
	if err = keys.UnmarshalBinary(plain); err != nil {
		return CommKeys{}, err
	}
	return keys, nil
}

// Seal implements [KeyWrapService].
func (k *keyWrapService) Seal(keys CommKeys, passphrase string) (string, error) {
	salt, err := k.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	blob, err := k.Wrap(keys, k.DeriveKEK(passphrase, salt))
	if err != nil {
		return "", fmt.Errorf("wrap keys: %w", err)
	}

	return base64.StdEncoding.EncodeToString(append(salt, blob...)), nil
}

// Open implements [KeyWrapService].
func (k *keyWrapService) Open(sealed, passphrase string) (CommKeys, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return CommKeys{}, fmt.Errorf("%w: decode base64: %v", ErrUnwrap, err)
	}
	if len(raw) < saltSize {
		return CommKeys{}, fmt.Errorf("%w: sealed keys too short", ErrUnwrap)
	}

	salt, blob := raw[:saltSize], raw[saltSize:]
	return k.Unwrap(blob, k.DeriveKEK(passphrase, salt))
}

func newGCM(kek []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
