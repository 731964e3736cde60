// Package protocoltest emulates the remote end of the ProcessData protocol
// for tests.
package protocoltest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/models"
)

// Marker bytes of the protected regions.
const (
	RequestMarker  byte = 0x1f
	ResponseMarker byte = 0xf1
)

// Operation computes the result for a decoded request.
type Operation func(data []byte) ([]byte, error)

// DecodedRequest is a request as the service sees it after decryption.
type DecodedRequest struct {
	UserObjectID uint32
	Nonce        protocol.Nonce
	PlainData    []byte
	Data         []byte
}

// DecodeRequest reverses [protocol.RequestBuilder.Build] with keys.
func DecodeRequest(keys crypto.CommKeys, payload string) (DecodedRequest, error) {
	raw, err := hex.DecodeString(payload)
	if err != nil {
		return DecodedRequest{}, err
	}
	if len(raw) < 2 {
		return DecodedRequest{}, errors.New("short request")
	}
	n := int(binary.BigEndian.Uint16(raw))
	if len(raw) < 2+n {
		return DecodedRequest{}, errors.New("short plain data")
	}

	c, err := crypto.NewProcessDataCipher(false, keys)
	if err != nil {
		return DecodedRequest{}, err
	}
	dec, err := c.Process(raw[2+n:])
	if err != nil {
		return DecodedRequest{}, err
	}
	if len(dec) < 13 || dec[0] != RequestMarker {
		return DecodedRequest{}, errors.New("bad request marker")
	}

	req := DecodedRequest{
		UserObjectID: binary.BigEndian.Uint32(dec[1:5]),
		PlainData:    raw[2 : 2+n],
		Data:         dec[13:],
	}
	copy(req.Nonce[:], dec[5:13])
	return req, nil
}

// EncodeResult builds the "result" field of a response. echoed is written
// as is, so callers pass a mangled nonce for a well-formed response.
func EncodeResult(keys crypto.CommKeys, marker byte, uoid uint32, echoed protocol.Nonce, plain, data []byte) (string, error) {
	inner := make([]byte, 0, 13+len(data))
	inner = append(inner, marker)
	inner = binary.BigEndian.AppendUint32(inner, uoid)
	inner = append(inner, echoed[:]...)
	inner = append(inner, data...)

	c, err := crypto.NewProcessDataCipher(true, keys)
	if err != nil {
		return "", err
	}
	protected, err := c.Process(inner)
	if err != nil {
		return "", err
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(len(plain)))
	out = append(out, plain...)
	out = append(out, protected...)
	return hex.EncodeToString(out), nil
}

// Service answers ProcessData requests for one user object.
type Service struct {
	UO models.UserObject

	// Op computes the result. Nil echoes the request data.
	Op Operation
}

// Respond handles one ProcessData request body the way the remote service
// does. Failures of Op are reported as status 0x6f00.
func (s *Service) Respond(req models.ProcessDataRequest) models.ResponseEnvelope {
	env := models.ResponseEnvelope{Function: req.Function}

	payload, ok := strings.CutPrefix(req.Data, "Packet0_")
	if ok {
		if i := strings.Index(payload, "_0000"); i >= 0 {
			payload = payload[i+len("_0000"):]
		}
	}

	decoded, err := DecodeRequest(s.UO.CommKeys, payload)
	if err != nil {
		env.Status = "4000"
		env.StatusDetail = fmt.Sprintf("cannot decode request: %v", err)
		return env
	}

	op := s.Op
	if op == nil {
		op = func(data []byte) ([]byte, error) { return data, nil }
	}
	out, err := op(decoded.Data)
	if err != nil {
		env.Status = "6f00"
		env.StatusDetail = err.Error()
		return env
	}

	result, err := EncodeResult(s.UO.CommKeys, ResponseMarker, decoded.UserObjectID, decoded.Nonce.Mangle(), nil, out)
	if err != nil {
		env.Status = "1000"
		env.StatusDetail = err.Error()
		return env
	}

	env.Status = "9000"
	env.Result = result
	return env
}
