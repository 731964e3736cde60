// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProcessDataRequest is the JSON body posted to the ProcessData endpoint.
type ProcessDataRequest struct {
	// Function is always "ProcessData".
	Function string `json:"function"`

	// Version of the request format, "1.0".
	Version string `json:"version"`

	// Nonce correlates request and response at transport level. It is
	// unrelated to the 8-byte freshness nonce inside the protected payload.
	Nonce string `json:"nonce"`

	// ObjectID is the user object id as 8 hex digits.
	ObjectID string `json:"objectid"`

	// Data is "Packet0_<FUNCTION>_0000" followed by the hex payload.
	Data string `json:"data"`
}

// ResponseEnvelope is the JSON body returned by the service. Field names are
// fixed by the service.
type ResponseEnvelope struct {
	Status       string `json:"status"`
	StatusDetail string `json:"statusdetail"`
	Function     string `json:"function"`
	Result       string `json:"result"`
}

// ParsedResponse is a validated and decrypted ProcessData response.
type ParsedResponse struct {
	StatusCode   uint16
	StatusDetail string
	Function     string

	UserObjectID uint32
	Nonce        [8]byte

	// PlainData is the cleartext prefix, nil when the service sent none.
	PlainData []byte

	// ProtectedData is the operation result.
	ProtectedData []byte
}

// ProcessDataCall is one logical ProcessData call: the user object it goes
// to, the operation payload and an optional cleartext prefix.
type ProcessDataCall struct {
	UserObject *UserObject
	Data       []byte
	PlainData  []byte
}
