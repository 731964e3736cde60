// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/models"
)

// sealResult builds a "result" field the way the service does.
func sealResult(t *testing.T, keys crypto.CommKeys, marker byte, uoid uint32, echoed Nonce, plain, data []byte) string {
	t.Helper()
	inner := []byte{marker}
	inner = binary.BigEndian.AppendUint32(inner, uoid)
	inner = append(inner, echoed[:]...)
	inner = append(inner, data...)

	enc, err := crypto.NewProcessDataCipher(true, keys)
	require.NoError(t, err)
	protected, err := enc.Process(inner)
	require.NoError(t, err)

	out := binary.BigEndian.AppendUint16(nil, uint16(len(plain)))
	out = append(out, plain...)
	return hex.EncodeToString(append(out, protected...))
}

func okEnvelope(result string) models.ResponseEnvelope {
	return models.ResponseEnvelope{Status: "9000", StatusDetail: "OK", Function: "ProcessData", Result: result}
}

// ── End to end ──────────────────────────────────────────────────────────────

func TestProcessData_EndToEnd(t *testing.T) {
	uo := testUO(t)

	req, err := NewRequestBuilder(uo).WithData([]byte("hello")).WithNonce(testNonce).Build()
	require.NoError(t, err)

	raw, err := hex.DecodeString(req.Payload)
	require.NoError(t, err)
	require.Len(t, raw, 2+48)

	result := sealResult(t, uo.CommKeys, 0xf1, 0x13, testNonce.Mangle(), nil, []byte("world"))
	body, err := json.Marshal(okEnvelope(result))
	require.NoError(t, err)

	resp, err := NewResponseParser(uo).Parse(body)
	require.NoError(t, err)

	assert.Equal(t, []byte("world"), resp.ProtectedData)
	assert.Equal(t, uint32(0x13), resp.UserObjectID)
	assert.Equal(t, [8]byte(testNonce), resp.Nonce)
	assert.Equal(t, uint16(0x9000), resp.StatusCode)
	assert.Equal(t, "ProcessData", resp.Function)
	assert.Nil(t, resp.PlainData)
	assert.NoError(t, req.Verify(resp))
}

// ── Success variants ────────────────────────────────────────────────────────

func TestResponseParser_PlainData(t *testing.T) {
	uo := testUO(t)
	result := sealResult(t, uo.CommKeys, 0xf1, 0x13, testNonce.Mangle(), []byte("hdr"), []byte("body"))

	resp, err := NewResponseParser(uo).ParseEnvelope(okEnvelope(result))
	require.NoError(t, err)
	assert.Equal(t, []byte("hdr"), resp.PlainData)
	assert.Equal(t, []byte("body"), resp.ProtectedData)
}

func TestResponseParser_TruncatesAtUnderscore(t *testing.T) {
	uo := testUO(t)
	result := sealResult(t, uo.CommKeys, 0xf1, 0x13, testNonce.Mangle(), nil, []byte("world"))

	resp, err := NewResponseParser(uo).ParseEnvelope(okEnvelope(result + "_trailing_garbage"))
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), resp.ProtectedData)
}

func TestResponseParser_EmptyResult(t *testing.T) {
	uo := testUO(t)
	result := sealResult(t, uo.CommKeys, 0xf1, 0x13, testNonce.Mangle(), nil, nil)

	resp, err := NewResponseParser(uo).ParseEnvelope(okEnvelope(result))
	require.NoError(t, err)
	assert.Empty(t, resp.ProtectedData)
}

// ── Status handling ─────────────────────────────────────────────────────────

func TestResponseParser_NonOKStatusSkipsDecryption(t *testing.T) {
	// result is not protected data at all
	env := models.ResponseEnvelope{Status: "6F00", StatusDetail: "crypto function check", Function: "ProcessData", Result: "not hex"}

	resp, err := NewResponseParser(nil).ParseEnvelope(env)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StatusCryptoFunctionCheck, se.Code)
	assert.Equal(t, "crypto function check", se.Detail)
	assert.True(t, se.Retryable())

	require.NotNil(t, resp)
	assert.Equal(t, uint16(0x6f00), resp.StatusCode)
	assert.Nil(t, resp.ProtectedData)
}

func TestResponseParser_BadStatus(t *testing.T) {
	_, err := NewResponseParser(testUO(t)).ParseEnvelope(models.ResponseEnvelope{Status: "OK"})
	assert.ErrorIs(t, err, ErrCorruptedResponse)
}

func TestResponseParser_BadJSON(t *testing.T) {
	_, err := NewResponseParser(testUO(t)).Parse([]byte("{"))
	assert.ErrorIs(t, err, ErrCorruptedResponse)
}

// ── Corruption ──────────────────────────────────────────────────────────────

func TestResponseParser_Corrupted(t *testing.T) {
	uo := testUO(t)
	good := sealResult(t, uo.CommKeys, 0xf1, 0x13, testNonce.Mangle(), nil, []byte("world"))

	otherKeys, err := crypto.NewCommKeys(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0x02}, 32))
	require.NoError(t, err)

	flipped, err := hex.DecodeString(good)
	require.NoError(t, err)
	flipped[len(flipped)-1] ^= 0x01

	tests := []struct {
		name      string
		result    string
		wantCause error
	}{
		{name: "not hex", result: "zz"},
		{name: "empty", result: ""},
		{name: "one byte", result: "00"},
		{name: "plain length too large", result: "00ff00"},
		{name: "no protected region", result: "0000"},
		{name: "tag flipped", result: hex.EncodeToString(flipped), wantCause: crypto.ErrIntegrity},
		{name: "wrong keys", result: sealResult(t, otherKeys, 0xf1, 0x13, testNonce.Mangle(), nil, []byte("world")), wantCause: crypto.ErrIntegrity},
		{name: "request marker", result: sealResult(t, uo.CommKeys, 0x1f, 0x13, testNonce.Mangle(), nil, []byte("world"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewResponseParser(uo).ParseEnvelope(okEnvelope(tt.result))
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrCorruptedResponse)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}

func TestResponseParser_ShortProtectedRegion(t *testing.T) {
	uo := testUO(t)

	// valid tag over a buffer that decrypts to fewer than 13 bytes
	enc, err := crypto.NewProcessDataCipher(true, uo.CommKeys)
	require.NoError(t, err)
	protected, err := enc.Process([]byte{0xf1, 0, 0})
	require.NoError(t, err)
	result := hex.EncodeToString(append([]byte{0, 0}, protected...))

	_, err = NewResponseParser(uo).ParseEnvelope(okEnvelope(result))
	assert.ErrorIs(t, err, ErrCorruptedResponse)
}

func TestResponseParser_MissingKeys(t *testing.T) {
	_, err := NewResponseParser(&models.UserObject{ID: 1}).ParseEnvelope(okEnvelope("0000"))
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestResponseParser_FlagMismatchMessage(t *testing.T) {
	uo := testUO(t)
	result := sealResult(t, uo.CommKeys, 0x00, 0x13, testNonce.Mangle(), nil, nil)

	_, err := NewResponseParser(uo).ParseEnvelope(okEnvelope(result))
	require.ErrorIs(t, err, ErrCorruptedResponse)
	assert.Contains(t, err.Error(), "flag mismatch")
}
