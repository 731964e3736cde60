// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

const (
	requestMarker  byte = 0x1f
	responseMarker byte = 0xf1

	// headerSize covers the marker, the user object id and the nonce.
	headerSize = 1 + 4 + NonceSize
)

// Envelope constants of the ProcessData endpoint.
const (
	EnvelopeFunction = "ProcessData"
	EnvelopeVersion  = "1.0"
)

// Request is a protected ProcessData payload ready to be sent.
type Request struct {
	// Payload is the hex encoded request buffer.
	Payload string

	// Nonce is the freshness nonce embedded in the protected region. The
	// response must echo it mangled.
	Nonce Nonce

	// UserObjectID is the id written into the protected region.
	UserObjectID uint32

	// Function is the remote function of the user object.
	Function uotype.Function
}

// PacketData renders the request as the "data" field of the ProcessData
// envelope: "Packet0_<FUNCTION>_0000<payload>".
func (r Request) PacketData() string {
	return "Packet0_" + r.Function.Name() + "_0000" + r.Payload
}

// Envelope wraps the request in the JSON body posted to the service.
// requestID is the transport correlation id.
func (r Request) Envelope(requestID string) models.ProcessDataRequest {
	return models.ProcessDataRequest{
		Function: EnvelopeFunction,
		Version:  EnvelopeVersion,
		Nonce:    requestID,
		ObjectID: models.HexID(r.UserObjectID),
		Data:     r.PacketData(),
	}
}

// RequestBuilder assembles one protected request. A builder is cheap and
// meant for a single [RequestBuilder.Build] call; every call builds its own
// cipher.
type RequestBuilder struct {
	uo     *models.UserObject
	data   []byte
	plain  []byte
	nonce  *Nonce
	random io.Reader
	err    error
}

// NewRequestBuilder returns a builder for requests to uo.
func NewRequestBuilder(uo *models.UserObject) *RequestBuilder {
	return &RequestBuilder{uo: uo}
}

// WithData sets the operation payload.
func (b *RequestBuilder) WithData(data []byte) *RequestBuilder {
	b.data = data
	return b
}

// WithRequestData sets the operation payload to buf[off:off+n].
func (b *RequestBuilder) WithRequestData(buf []byte, off, n int) *RequestBuilder {
	if off < 0 || n < 0 || off > len(buf) || n > len(buf)-off {
		b.err = fmt.Errorf("%w: request data range [%d:%d] out of %d bytes", ErrIllegalState, off, off+n, len(buf))
		return b
	}
	b.data = buf[off : off+n]
	return b
}

// WithPlainData sets the cleartext prefix. It is normally empty.
func (b *RequestBuilder) WithPlainData(plain []byte) *RequestBuilder {
	b.plain = plain
	return b
}

// WithNonce fixes the nonce instead of generating a fresh one.
func (b *RequestBuilder) WithNonce(n Nonce) *RequestBuilder {
	b.nonce = &n
	return b
}

// WithRandom sets the source used to generate the nonce. Defaults to
// [crypto/rand.Reader].
func (b *RequestBuilder) WithRandom(random io.Reader) *RequestBuilder {
	b.random = random
	return b
}

// Build lays out, protects and hex encodes the request.
func (b *RequestBuilder) Build() (Request, error) {
	if b.err != nil {
		return Request{}, b.err
	}
	if b.uo == nil {
		return Request{}, fmt.Errorf("%w: user object is not set", ErrIllegalState)
	}
	if !b.uo.CommKeys.IsUsable() {
		return Request{}, fmt.Errorf("%w: user object %s has no communication keys", ErrIllegalState, b.uo.Handle())
	}
	if len(b.plain) > math.MaxUint16 {
		return Request{}, fmt.Errorf("%w: plain data is %d bytes", ErrIllegalState, len(b.plain))
	}

	nonce, err := b.resolveNonce()
	if err != nil {
		return Request{}, err
	}

	buf := make([]byte, 0, 2+len(b.plain)+headerSize+len(b.data))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(b.plain)))
	buf = append(buf, b.plain...)

	commOffset := len(buf)
	buf = append(buf, requestMarker)
	buf = binary.BigEndian.AppendUint32(buf, b.uo.ID)
	buf = append(buf, nonce[:]...)
	buf = append(buf, b.data...)

	c, err := crypto.NewProcessDataCipher(true, b.uo.CommKeys)
	if err != nil {
		return Request{}, err
	}
	protected, err := c.Process(buf[commOffset:])
	if err != nil {
		return Request{}, err
	}
	buf = append(buf[:commOffset], protected...)

	return Request{
		Payload:      hex.EncodeToString(buf),
		Nonce:        nonce,
		UserObjectID: b.uo.ID,
		Function:     b.uo.Type.Function(),
	}, nil
}

func (b *RequestBuilder) resolveNonce() (Nonce, error) {
	if b.nonce != nil {
		return *b.nonce, nil
	}
	return GenerateNonce(b.random)
}

// Verify checks that resp answers r: same user object and the expected
// echoed nonce.
func (r Request) Verify(resp *models.ParsedResponse) error {
	if resp.UserObjectID != r.UserObjectID {
		return fmt.Errorf("%w: user object id mismatch: sent %08x, got %08x", ErrCorruptedResponse, r.UserObjectID, resp.UserObjectID)
	}
	if resp.Nonce != r.Nonce {
		return fmt.Errorf("%w: nonce mismatch", ErrCorruptedResponse)
	}
	return nil
}
