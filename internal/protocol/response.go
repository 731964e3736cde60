// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/models"
)

// ResponseParser validates and decrypts ProcessData responses of one user
// object.
type ResponseParser struct {
	uo *models.UserObject
}

// NewResponseParser returns a parser for responses from uo.
func NewResponseParser(uo *models.UserObject) *ResponseParser {
	return &ResponseParser{uo: uo}
}

// Parse decodes a raw JSON response body. See [ResponseParser.ParseEnvelope].
func (p *ResponseParser) Parse(body []byte) (*models.ParsedResponse, error) {
	var env models.ResponseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrCorruptedResponse, err)
	}
	return p.ParseEnvelope(env)
}

// ParseEnvelope validates the envelope status and, for [StatusOK] only,
// decrypts the result. A non-OK status is returned as a [*StatusError]
// together with a response carrying the status fields.
func (p *ResponseParser) ParseEnvelope(env models.ResponseEnvelope) (*models.ParsedResponse, error) {
	code, err := ParseStatus(env.Status)
	if err != nil {
		return nil, err
	}

	resp := &models.ParsedResponse{
		StatusCode:   uint16(code),
		StatusDetail: env.StatusDetail,
		Function:     env.Function,
	}
	if !code.IsOK() {
		return resp, &StatusError{Code: code, Detail: env.StatusDetail, Function: env.Function}
	}

	if p.uo == nil || !p.uo.CommKeys.IsUsable() {
		return nil, fmt.Errorf("%w: user object has no communication keys", ErrIllegalState)
	}

	raw, err := decodeResult(env.Result)
	if err != nil {
		return nil, err
	}

	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: missing plain data length", ErrCorruptedResponse)
	}
	plainLen := int(binary.BigEndian.Uint16(raw))
	raw = raw[2:]
	if plainLen > len(raw) {
		return nil, fmt.Errorf("%w: plain data length %d exceeds %d bytes", ErrCorruptedResponse, plainLen, len(raw))
	}
	if plainLen > 0 {
		resp.PlainData = raw[:plainLen:plainLen]
	}
	raw = raw[plainLen:]

	c, err := crypto.NewProcessDataCipher(false, p.uo.CommKeys)
	if err != nil {
		return nil, err
	}
	dec, err := c.Process(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedResponse, err)
	}

	if len(dec) < headerSize {
		return nil, fmt.Errorf("%w: protected region is %d bytes", ErrCorruptedResponse, len(dec))
	}
	if dec[0] != responseMarker {
		return nil, fmt.Errorf("%w: flag mismatch: got 0x%02x", ErrCorruptedResponse, dec[0])
	}

	resp.UserObjectID = binary.BigEndian.Uint32(dec[1:5])
	var echoed Nonce
	copy(echoed[:], dec[5:headerSize])
	resp.Nonce = echoed.Demangle()
	resp.ProtectedData = dec[headerSize:]

	return resp, nil
}

// decodeResult hex decodes the result field, ignoring anything from the
// first underscore on.
func decodeResult(result string) ([]byte, error) {
	if i := strings.IndexByte(result, '_'); i >= 0 {
		result = result[:i]
	}
	raw, err := hex.DecodeString(result)
	if err != nil {
		return nil, fmt.Errorf("%w: decode result: %v", ErrCorruptedResponse, err)
	}
	return raw, nil
}
