// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package uotype packs and unpacks the 64-bit user object type descriptor.
//
// The descriptor selects the remote operation a user object runs and the
// key generation policies it was enrolled with:
//
//	bits [0,16)   function code ([Function])
//	bit  20       communication key generation policy ([CommKeyPolicy])
//	bits [21,24)  application key generation policy ([AppKeyPolicy])
//
// All remaining bits are reserved. They are never assumed to be zero and are
// carried unchanged through every setter on [Descriptor].
package uotype
