// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package uotype

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	functionShift = 0
	functionMask  = 0xffff

	commKeyShift = 20
	commKeyMask  = 0x1

	appKeyShift = 21
	appKeyMask  = 0x7
)

// CommKeyPolicy says who generated the communication keys of a user object.
type CommKeyPolicy uint8

const (
	// CommKeyLegacyRandom means the keys were generated randomly during
	// enrollment.
	CommKeyLegacyRandom CommKeyPolicy = 0
	// CommKeyClient means the keys were supplied by the client.
	CommKeyClient CommKeyPolicy = 1
)

// AppKeyPolicy says how the application key of a user object was generated.
type AppKeyPolicy uint8

const (
	AppKeyLegacyRandom AppKeyPolicy = iota
	AppKeyClient
	AppKeyServerRandom
	AppKeyServerDerived
	AppKeyClientDerived
	AppKeyImported
	AppKeyTemplate

	maxAppKeyPolicy = AppKeyTemplate
)

// Descriptor is the packed 64-bit user object type.
type Descriptor uint64

// Pack builds a descriptor from its three fields. Reserved bits are zero.
//
// Returns [ErrInvalidArgument] if app is outside 0..6 or comm is not 0 or 1.
func Pack(fn Function, app AppKeyPolicy, comm CommKeyPolicy) (Descriptor, error) {
	return PackRaw(uint64(fn), uint64(app), uint64(comm))
}

// PackRaw is [Pack] for untyped inputs, e.g. values read from configuration.
// Each value is checked against the width of its field.
func PackRaw(fn, app, comm uint64) (Descriptor, error) {
	if fn > functionMask {
		return 0, fmt.Errorf("%w: function 0x%x does not fit 16 bits", ErrInvalidArgument, fn)
	}
	if app > appKeyMask || app > uint64(maxAppKeyPolicy) {
		return 0, fmt.Errorf("%w: app key policy %d out of range", ErrInvalidArgument, app)
	}
	if comm > commKeyMask {
		return 0, fmt.Errorf("%w: comm key policy %d out of range", ErrInvalidArgument, comm)
	}

	return Descriptor(fn<<functionShift | app<<appKeyShift | comm<<commKeyShift), nil
}

// Parse reads a descriptor written as hex ("0x..." or bare) or decimal.
func Parse(s string) (Descriptor, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Descriptor(v), nil
}

// Unpack is the inverse of [Pack].
func (d Descriptor) Unpack() (Function, AppKeyPolicy, CommKeyPolicy) {
	return d.Function(), d.AppKeyPolicy(), d.CommKeyPolicy()
}

func (d Descriptor) Function() Function {
	return Function((uint64(d) >> functionShift) & functionMask)
}

func (d Descriptor) AppKeyPolicy() AppKeyPolicy {
	return AppKeyPolicy((uint64(d) >> appKeyShift) & appKeyMask)
}

func (d Descriptor) CommKeyPolicy() CommKeyPolicy {
	return CommKeyPolicy((uint64(d) >> commKeyShift) & commKeyMask)
}

// Reserved returns the descriptor with the three known fields cleared.
func (d Descriptor) Reserved() uint64 {
	known := uint64(functionMask)<<functionShift |
		uint64(appKeyMask)<<appKeyShift |
		uint64(commKeyMask)<<commKeyShift
	return uint64(d) &^ known
}

// WithFunction returns a copy of d with the function code replaced.
func (d Descriptor) WithFunction(fn Function) Descriptor {
	v := uint64(d) &^ (functionMask << functionShift)
	return Descriptor(v | uint64(fn)<<functionShift)
}

// WithAppKeyPolicy returns a copy of d with the app key policy replaced.
func (d Descriptor) WithAppKeyPolicy(p AppKeyPolicy) (Descriptor, error) {
	if p > maxAppKeyPolicy {
		return d, fmt.Errorf("%w: app key policy %d out of range", ErrInvalidArgument, p)
	}
	v := uint64(d) &^ (appKeyMask << appKeyShift)
	return Descriptor(v | uint64(p)<<appKeyShift), nil
}

// WithCommKeyPolicy returns a copy of d with the comm key policy replaced.
func (d Descriptor) WithCommKeyPolicy(p CommKeyPolicy) (Descriptor, error) {
	if p > CommKeyClient {
		return d, fmt.Errorf("%w: comm key policy %d out of range", ErrInvalidArgument, p)
	}
	v := uint64(d) &^ (commKeyMask << commKeyShift)
	return Descriptor(v | uint64(p)<<commKeyShift), nil
}

func (d Descriptor) AlgorithmName() string { return d.Function().AlgorithmName() }

func (d Descriptor) KeyType() KeyType { return d.Function().KeyType() }

func (d Descriptor) KeyLengthBits() int { return d.Function().KeyLengthBits() }

func (d Descriptor) InversionFunction() Function { return d.Function().Inversion() }

// String renders the descriptor as 0x-prefixed hex.
func (d Descriptor) String() string {
	return "0x" + strconv.FormatUint(uint64(d), 16)
}
