// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Errors returned by [ProcessDataCipher] and [CommKeys]. Callers match them
// with [errors.Is]; the concrete error usually wraps one of these with
// additional detail.
var (
	// ErrKey is returned when communication keys are missing or are not
	// exactly [CommKeySize] bytes long.
	ErrKey = errors.New("invalid communication keys")

	// ErrIntegrity is returned when the authentication tag of a protected
	// buffer does not match. Nothing is decrypted in that case.
	ErrIntegrity = errors.New("invalid MAC")

	// ErrPadding is returned when PKCS#7 padding is malformed after the tag
	// has already been verified.
	ErrPadding = errors.New("invalid padding")

	// ErrUnwrap is returned when sealed communication keys cannot be opened,
	// usually because the passphrase is wrong.
	ErrUnwrap = errors.New("unwrap communication keys")
)
