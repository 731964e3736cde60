// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

const (
	// BlockSize is the AES block size shared by the cipher and the MAC.
	BlockSize = aes.BlockSize

	// MACSize is the length of the appended CBC-MAC tag (one full block).
	MACSize = aes.BlockSize
)

// zeroIV is used for both AES-CBC and the CBC-MAC. Freshness comes from the
// nonce inside the protected region, not from the IV.
var zeroIV = make([]byte, BlockSize)

// ProcessDataCipher is the encrypt-then-MAC transform applied to every
// ProcessData payload: AES-256-CBC with a zero IV and PKCS#7 padding for
// confidentiality, followed by a full-block AES CBC-MAC over the ciphertext
// keyed with the MAC key.
//
// A cipher is built for one direction and one logical operation. It holds
// no state between calls to [ProcessDataCipher.Process].
type ProcessDataCipher struct {
	forEncryption bool
	enc           cipher.Block
	mac           cipher.Block
}

// NewProcessDataCipher builds a cipher from keys for the given direction.
// Returns [ErrKey] if keys are not usable.
func NewProcessDataCipher(forEncryption bool, keys CommKeys) (*ProcessDataCipher, error) {
	if !keys.IsUsable() {
		return nil, fmt.Errorf("%w: %s", ErrKey, keys)
	}

	enc, err := aes.NewCipher(keys.enc)
	if err != nil {
		return nil, fmt.Errorf("%w: create aes cipher: %v", ErrKey, err)
	}
	mac, err := aes.NewCipher(keys.mac)
	if err != nil {
		return nil, fmt.Errorf("%w: create mac cipher: %v", ErrKey, err)
	}

	return &ProcessDataCipher{forEncryption: forEncryption, enc: enc, mac: mac}, nil
}

// ForEncryption reports the direction the cipher was built for.
func (c *ProcessDataCipher) ForEncryption() bool {
	return c.forEncryption
}

// OutputSize returns the buffer size needed for an input of n bytes. For
// decryption it is an upper bound, padding is not known before decrypting.
func (c *ProcessDataCipher) OutputSize(n int) int {
	if c.forEncryption {
		return n - n%BlockSize + BlockSize + MACSize
	}
	if n < MACSize {
		return 0
	}
	return n - MACSize
}

// Process encrypts or decrypts in, depending on the cipher direction. The
// input slice is never modified.
func (c *ProcessDataCipher) Process(in []byte) ([]byte, error) {
	if c.forEncryption {
		return c.encrypt(in), nil
	}
	return c.decrypt(in)
}

func (c *ProcessDataCipher) encrypt(in []byte) []byte {
	out := make([]byte, c.OutputSize(len(in)))

	padded := pkcs7Pad(out[:0], in, BlockSize)
	ctLen := len(padded)
	cipher.NewCBCEncrypter(c.enc, zeroIV).CryptBlocks(out[:ctLen], padded)

	copy(out[ctLen:], cbcMAC(c.mac, out[:ctLen]))
	return out
}

func (c *ProcessDataCipher) decrypt(in []byte) ([]byte, error) {
	if len(in) < BlockSize+MACSize || (len(in)-MACSize)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: protected buffer of %d bytes is malformed", ErrIntegrity, len(in))
	}

	ct, tag := in[:len(in)-MACSize], in[len(in)-MACSize:]
	if subtle.ConstantTimeCompare(cbcMAC(c.mac, ct), tag) != 1 {
		return nil, ErrIntegrity
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(c.enc, zeroIV).CryptBlocks(plain, ct)

	return pkcs7Unpad(plain, BlockSize)
}

// cbcMAC returns the last CBC block of data under block with a zero IV.
// data must be a whole number of blocks.
func cbcMAC(block cipher.Block, data []byte) []byte {
	state := make([]byte, BlockSize)
	for off := 0; off < len(data); off += BlockSize {
		subtle.XORBytes(state, state, data[off:off+BlockSize])
		block.Encrypt(state, state)
	}
	return state
}
