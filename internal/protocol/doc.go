// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the ProcessData framing used to talk to a
// remote user object.
//
// A request is laid out as
//
//	[2B plain length][plain data][0x1F][4B user object id][8B nonce][request data]
//
// where everything from the 0x1F marker on is protected with the user
// object's communication keys (AES-256-CBC then CBC-MAC, see
// [crypto.ProcessDataCipher]) and the whole buffer is hex encoded.
//
// A response carries the same cleartext prefix followed by a protected region
// that decrypts to
//
//	[0xF1][4B user object id][8B nonce + 1 per byte][result]
//
// All integers are big-endian.
package protocol
