// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

var testNonce = Nonce{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

func testUO(t *testing.T) *models.UserObject {
	t.Helper()
	keys, err := crypto.NewCommKeys(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)
	desc, err := uotype.Pack(uotype.FunctionPlainAES, uotype.AppKeyClient, uotype.CommKeyClient)
	require.NoError(t, err)
	return &models.UserObject{ID: 0x13, Type: desc, CommKeys: keys, APIKey: "TEST_API"}
}

// openRequest decrypts the protected region of a built request.
func openRequest(t *testing.T, uo *models.UserObject, payload string) (plain, inner []byte) {
	t.Helper()
	raw, err := hex.DecodeString(payload)
	require.NoError(t, err)
	n := int(binary.BigEndian.Uint16(raw))
	dec, err := crypto.NewProcessDataCipher(false, uo.CommKeys)
	require.NoError(t, err)
	inner, err = dec.Process(raw[2+n:])
	require.NoError(t, err)
	return raw[2 : 2+n], inner
}

// ── Layout ──────────────────────────────────────────────────────────────────

func TestRequestBuilder_Layout(t *testing.T) {
	uo := testUO(t)

	req, err := NewRequestBuilder(uo).WithData([]byte("hello")).WithNonce(testNonce).Build()
	require.NoError(t, err)

	raw, err := hex.DecodeString(req.Payload)
	require.NoError(t, err)

	// 1+4+8+5 = 18 bytes protected: two AES blocks plus the tag
	assert.Equal(t, []byte{0x00, 0x00}, raw[:2])
	assert.Len(t, raw[2:], 48)

	_, inner := openRequest(t, uo, req.Payload)
	assert.Equal(t, byte(0x1f), inner[0])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x13}, inner[1:5])
	assert.Equal(t, testNonce[:], inner[5:13])
	assert.Equal(t, []byte("hello"), inner[13:])

	assert.Equal(t, testNonce, req.Nonce)
	assert.Equal(t, uint32(0x13), req.UserObjectID)
	assert.Equal(t, uotype.FunctionPlainAES, req.Function)
}

func TestRequestBuilder_PlainDataInClear(t *testing.T) {
	uo := testUO(t)

	req, err := NewRequestBuilder(uo).
		WithPlainData([]byte("clear")).
		WithData([]byte("secret")).
		WithNonce(testNonce).
		Build()
	require.NoError(t, err)

	raw, err := hex.DecodeString(req.Payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x05, 'c', 'l', 'e', 'a', 'r'}, raw[:7])

	plain, inner := openRequest(t, uo, req.Payload)
	assert.Equal(t, []byte("clear"), plain)
	assert.Equal(t, []byte("secret"), inner[13:])
	assert.NotContains(t, req.Payload, hex.EncodeToString([]byte("secret")))
}

func TestRequestBuilder_RequestDataRange(t *testing.T) {
	uo := testUO(t)
	buf := []byte("xxhelloyy")

	req, err := NewRequestBuilder(uo).WithRequestData(buf, 2, 5).WithNonce(testNonce).Build()
	require.NoError(t, err)
	_, inner := openRequest(t, uo, req.Payload)
	assert.Equal(t, []byte("hello"), inner[13:])

	for _, r := range [][2]int{{-1, 2}, {0, 10}, {10, 0}, {5, -1}} {
		_, err = NewRequestBuilder(uo).WithRequestData(buf, r[0], r[1]).Build()
		assert.ErrorIs(t, err, ErrIllegalState, "range %v", r)
	}
}

func TestRequestBuilder_GeneratesNonce(t *testing.T) {
	uo := testUO(t)
	src := bytes.NewReader([]byte{9, 9, 9, 9, 9, 9, 9, 9})

	req, err := NewRequestBuilder(uo).WithRandom(src).Build()
	require.NoError(t, err)
	assert.Equal(t, Nonce{9, 9, 9, 9, 9, 9, 9, 9}, req.Nonce)

	_, inner := openRequest(t, uo, req.Payload)
	assert.Equal(t, req.Nonce[:], inner[5:13])
	assert.Empty(t, inner[13:])

	a, err := NewRequestBuilder(uo).Build()
	require.NoError(t, err)
	b, err := NewRequestBuilder(uo).Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Payload, b.Payload)
}

// ── Failures ────────────────────────────────────────────────────────────────

func TestRequestBuilder_IllegalState(t *testing.T) {
	_, err := NewRequestBuilder(nil).Build()
	assert.ErrorIs(t, err, ErrIllegalState)

	uo := testUO(t)
	uo.CommKeys = crypto.CommKeys{}
	_, err = NewRequestBuilder(uo).WithData([]byte("x")).Build()
	assert.ErrorIs(t, err, ErrIllegalState)

	_, err = NewRequestBuilder(testUO(t)).WithPlainData(make([]byte, 1<<16)).Build()
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestRequestBuilder_NonceSourceError(t *testing.T) {
	_, err := NewRequestBuilder(testUO(t)).WithRandom(bytes.NewReader(nil)).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate nonce")
}

// ── Packet ──────────────────────────────────────────────────────────────────

func TestRequest_PacketData(t *testing.T) {
	req := Request{Payload: "abcd", Function: uotype.FunctionPlainAES}
	assert.Equal(t, "Packet0_PLAINAES_0000abcd", req.PacketData())

	req.Function = uotype.FunctionRandomData
	assert.True(t, strings.HasPrefix(req.PacketData(), "Packet0_RANDOMDATA_0000"))
}

func TestRequest_Envelope(t *testing.T) {
	req := Request{Payload: "abcd", Function: uotype.FunctionPlainAES, UserObjectID: 0x13}

	assert.Equal(t, models.ProcessDataRequest{
		Function: "ProcessData",
		Version:  "1.0",
		Nonce:    "req-1",
		ObjectID: "00000013",
		Data:     "Packet0_PLAINAES_0000abcd",
	}, req.Envelope("req-1"))
}

func TestRequest_Verify(t *testing.T) {
	req := Request{Nonce: testNonce, UserObjectID: 0x13}

	assert.NoError(t, req.Verify(&models.ParsedResponse{UserObjectID: 0x13, Nonce: testNonce}))
	assert.ErrorIs(t, req.Verify(&models.ParsedResponse{UserObjectID: 0x14, Nonce: testNonce}), ErrCorruptedResponse)
	assert.ErrorIs(t, req.Verify(&models.ParsedResponse{UserObjectID: 0x13, Nonce: testNonce.Mangle()}), ErrCorruptedResponse)
}
