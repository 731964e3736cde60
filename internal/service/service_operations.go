// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/aes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

type operationsService struct {
	processData ProcessDataService
}

// NewOperationsService constructs an [OperationsService] issuing its calls
// through processData.
func NewOperationsService(processData ProcessDataService) OperationsService {
	return &operationsService{processData: processData}
}

// AESEncrypt encrypts whole AES blocks under the user object's application
// key. The object must be a PLAINAES object.
func (s *operationsService) AESEncrypt(ctx context.Context, uo *models.UserObject, plaintext []byte) ([]byte, error) {
	if err := requireFunction(uo, uotype.FunctionPlainAES); err != nil {
		return nil, err
	}
	if err := requireBlocks(plaintext); err != nil {
		return nil, err
	}
	return s.call(ctx, uo, plaintext, len(plaintext))
}

// AESDecrypt is the inverse of AESEncrypt on a PLAINAESDECRYPT object.
func (s *operationsService) AESDecrypt(ctx context.Context, uo *models.UserObject, ciphertext []byte) ([]byte, error) {
	if err := requireFunction(uo, uotype.FunctionPlainAESDecrypt); err != nil {
		return nil, err
	}
	if err := requireBlocks(ciphertext); err != nil {
		return nil, err
	}
	return s.call(ctx, uo, ciphertext, len(ciphertext))
}

// RSA applies the raw RSA operation of the object. The input must be
// exactly one modulus long.
func (s *operationsService) RSA(ctx context.Context, uo *models.UserObject, input []byte) ([]byte, error) {
	if err := requireUserObject(uo); err != nil {
		return nil, err
	}
	if uo.Type.AlgorithmName() != "RSA" {
		return nil, fmt.Errorf("%w: %s is %s, not RSA", ErrFunctionMismatch, uo.Handle(), uo.Type.Function())
	}
	size := uo.Type.KeyLengthBits() / 8
	if len(input) != size {
		return nil, fmt.Errorf("%w: RSA input is %d bytes, want %d", ErrInvalidInput, len(input), size)
	}
	return s.call(ctx, uo, input, size)
}

// HMAC computes a MAC over data with the object's key.
func (s *operationsService) HMAC(ctx context.Context, uo *models.UserObject, data []byte) ([]byte, error) {
	if err := requireFunction(uo, uotype.FunctionHMAC); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty HMAC input", ErrInvalidInput)
	}
	return s.call(ctx, uo, data, -1)
}

// Random asks a RANDOMDATA object for n random bytes.
func (s *operationsService) Random(ctx context.Context, uo *models.UserObject, n int) ([]byte, error) {
	if err := requireFunction(uo, uotype.FunctionRandomData); err != nil {
		return nil, err
	}
	if n <= 0 || n > math.MaxUint16 {
		return nil, fmt.Errorf("%w: random length %d out of 1..%d", ErrInvalidInput, n, math.MaxUint16)
	}
	return s.call(ctx, uo, binary.BigEndian.AppendUint16(nil, uint16(n)), n)
}

// call runs ProcessData and returns the protected response data. A
// non-negative want is the length the result must have.
func (s *operationsService) call(ctx context.Context, uo *models.UserObject, data []byte, want int) ([]byte, error) {
	resp, err := s.processData.ProcessData(ctx, models.ProcessDataCall{UserObject: uo, Data: data})
	if err != nil {
		return nil, err
	}
	if want >= 0 && len(resp.ProtectedData) != want {
		return nil, fmt.Errorf("%w: result is %d bytes, want %d", protocol.ErrCorruptedResponse, len(resp.ProtectedData), want)
	}
	return resp.ProtectedData, nil
}

func requireUserObject(uo *models.UserObject) error {
	if uo == nil {
		return fmt.Errorf("%w: no user object", ErrInvalidUserObject)
	}
	return nil
}

func requireFunction(uo *models.UserObject, fn uotype.Function) error {
	if err := requireUserObject(uo); err != nil {
		return err
	}
	if got := uo.Type.Function(); got != fn {
		return fmt.Errorf("%w: %s is %s, want %s", ErrFunctionMismatch, uo.Handle(), got, fn)
	}
	return nil
}

func requireBlocks(data []byte) error {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: AES input is %d bytes, want a non-empty multiple of %d", ErrInvalidInput, len(data), aes.BlockSize)
	}
	return nil
}
