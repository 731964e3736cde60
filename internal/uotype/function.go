// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package uotype

import "fmt"

// Function is the 16-bit operation code of a user object.
type Function uint16

// Opcodes and wire names follow the remote service's user object function
// table as deployed for this client. Codes outside the table still pack,
// parse and travel on the wire as their hex form, see [Function.Name].

const (
	FunctionPlainAES            Function = 0x0000
	FunctionRSA1024DecryptNoPad Function = 0x0001
	FunctionRSA2048DecryptNoPad Function = 0x0002
	FunctionECFP192Sign         Function = 0x0003
	FunctionAuthHOTP            Function = 0x0004
	FunctionAuthPassword        Function = 0x0005
	FunctionAuth                Function = 0x0006
	FunctionRSA1024EncryptNoPad Function = 0x0007
	FunctionRSA2048EncryptNoPad Function = 0x0008
	FunctionECFP192Encrypt      Function = 0x0009
	FunctionPlainAESDecrypt     Function = 0x000a
	FunctionRandomData          Function = 0x000b
	FunctionSHA256              Function = 0x000c
	FunctionTokenize            Function = 0x000d
	FunctionDetokenize          Function = 0x000e
	FunctionHMAC                Function = 0x000f
)

// NoInversion is returned by [Function.Inversion] for functions without a
// complementary operation. It lies outside the assigned opcode range.
const NoInversion Function = 0xffff

// KeyType classifies the application key a function operates with.
type KeyType uint8

const (
	KeyTypeNone KeyType = iota
	KeyTypeSecret
	KeyTypePrivate
	KeyTypePublic
)

func (k KeyType) String() string {
	switch k {
	case KeyTypeSecret:
		return "secret"
	case KeyTypePrivate:
		return "private"
	case KeyTypePublic:
		return "public"
	default:
		return "none"
	}
}

type functionInfo struct {
	name      string
	algorithm string
	keyType   KeyType
	keyBits   int
	inversion Function
}

// functions is the fixed opcode property table. Entries without an
// algorithm are not cipher keys.
var functions = map[Function]functionInfo{
	FunctionPlainAES:            {"PLAINAES", "AES", KeyTypeSecret, 256, FunctionPlainAESDecrypt},
	FunctionPlainAESDecrypt:     {"PLAINAESDECRYPT", "AES", KeyTypeSecret, 256, FunctionPlainAES},
	FunctionRSA1024DecryptNoPad: {"RSA1024", "RSA", KeyTypePrivate, 1024, FunctionRSA1024EncryptNoPad},
	FunctionRSA1024EncryptNoPad: {"RSA1024ENC", "RSA", KeyTypePublic, 1024, FunctionRSA1024DecryptNoPad},
	FunctionRSA2048DecryptNoPad: {"RSA2048", "RSA", KeyTypePrivate, 2048, FunctionRSA2048EncryptNoPad},
	FunctionRSA2048EncryptNoPad: {"RSA2048ENC", "RSA", KeyTypePublic, 2048, FunctionRSA2048DecryptNoPad},
	FunctionECFP192Sign:         {name: "ECCFP192SIGN", inversion: NoInversion},
	FunctionECFP192Encrypt:      {name: "ECCFP192ENC", inversion: NoInversion},
	FunctionAuthHOTP:            {name: "AUTH_HOTP", inversion: NoInversion},
	FunctionAuthPassword:        {name: "AUTH_PASSWORD", inversion: NoInversion},
	FunctionAuth:                {name: "AUTH", inversion: NoInversion},
	FunctionRandomData:          {name: "RANDOMDATA", inversion: NoInversion},
	FunctionSHA256:              {name: "SHA256", inversion: NoInversion},
	FunctionTokenize:            {name: "TOKENIZE", inversion: NoInversion},
	FunctionDetokenize:          {name: "DETOKENIZE", inversion: NoInversion},
	FunctionHMAC:                {name: "HMAC", inversion: NoInversion},
}

// Name returns the wire name of the function used in the ProcessData packet
// prefix. Unknown functions render as their hex code.
func (f Function) Name() string {
	if info, ok := functions[f]; ok {
		return info.name
	}
	return fmt.Sprintf("0x%04x", uint16(f))
}

func (f Function) String() string { return f.Name() }

// AlgorithmName returns "AES" or "RSA" for cipher-key functions and "" for
// everything else.
func (f Function) AlgorithmName() string {
	return functions[f].algorithm
}

// KeyType returns [KeyTypeNone] for functions that do not hold a cipher key.
func (f Function) KeyType() KeyType {
	return functions[f].keyType
}

// KeyLengthBits returns 0 for functions that do not hold a cipher key.
func (f Function) KeyLengthBits() int {
	return functions[f].keyBits
}

// Inversion returns the complementary encrypt/decrypt function, or
// [NoInversion].
func (f Function) Inversion() Function {
	info, ok := functions[f]
	if !ok {
		return NoInversion
	}
	return info.inversion
}

// HasInversion reports whether f has a complementary function.
func (f Function) HasInversion() bool {
	return f.Inversion() != NoInversion
}

// IsKnown reports whether f is in the opcode table.
func (f Function) IsKnown() bool {
	_, ok := functions[f]
	return ok
}
