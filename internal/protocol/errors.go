// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "errors"

var (
	// ErrCorruptedResponse is returned when a response cannot be decoded,
	// fails authentication, carries the wrong marker or is truncated.
	ErrCorruptedResponse = errors.New("corrupted response")

	// ErrIllegalState is returned when a request is built without a user
	// object or without usable communication keys.
	ErrIllegalState = errors.New("illegal request state")
)
