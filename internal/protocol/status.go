// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusCode is the 16-bit status returned in the response envelope.
type StatusCode uint16

const (
	// StatusOK is the only success status.
	StatusOK StatusCode = 0x9000

	// StatusCryptoFunctionCheck is reported when the HSM's crypto function
	// self check fails. The call may succeed when repeated.
	StatusCryptoFunctionCheck StatusCode = 0x6f00
)

// StatusClass groups status codes by their top nibble.
type StatusClass uint8

const (
	ClassUnknown StatusClass = iota
	ClassCritical
	ClassMalformedData
	ClassSyncMismatch
	ClassSecurity
	ClassInformational
	ClassOtherHSM
	ClassUserSecurity
	ClassSecureChannel
	ClassOK
)

var classNames = map[StatusClass]string{
	ClassUnknown:       "unknown",
	ClassCritical:      "critical",
	ClassMalformedData: "malformed data",
	ClassSyncMismatch:  "synchronization mismatch",
	ClassSecurity:      "security",
	ClassInformational: "informational",
	ClassOtherHSM:      "hsm",
	ClassUserSecurity:  "user security",
	ClassSecureChannel: "secure channel",
	ClassOK:            "ok",
}

func (c StatusClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return classNames[ClassUnknown]
}

// Class returns the class selected by the top nibble of the code.
func (s StatusCode) Class() StatusClass {
	if s == StatusOK {
		return ClassOK
	}
	switch nibble := s >> 12; nibble {
	case 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8:
		return StatusClass(nibble)
	default:
		return ClassUnknown
	}
}

// IsOK reports whether s is [StatusOK].
func (s StatusCode) IsOK() bool { return s == StatusOK }

func (s StatusCode) String() string {
	return fmt.Sprintf("0x%04x", uint16(s))
}

// ParseStatus decodes the hex status field of the envelope, with or without a
// 0x prefix.
func ParseStatus(s string) (StatusCode, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: status %q: %v", ErrCorruptedResponse, s, err)
	}
	return StatusCode(v), nil
}

// StatusError is returned for every response whose status is not
// [StatusOK]. Nothing is decrypted for such responses.
type StatusError struct {
	Code     StatusCode
	Detail   string
	Function string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("service returned status %s (%s)", e.Code, e.Code.Class())
	}
	return fmt.Sprintf("service returned status %s (%s): %s", e.Code, e.Code.Class(), e.Detail)
}

// Class is a shortcut for e.Code.Class().
func (e *StatusError) Class() StatusClass { return e.Code.Class() }

// Retryable reports whether repeating the call may succeed. Only the crypto
// function check failure is.
func (e *StatusError) Retryable() bool { return e.Code == StatusCryptoFunctionCheck }
