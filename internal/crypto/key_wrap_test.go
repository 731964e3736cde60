package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyWrapService(nil)

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyWrapService(nil)

	salt := bytes.Repeat([]byte{0xAB}, 16)
	k1 := svc.DeriveKEK("correct horse battery staple", salt)
	k2 := svc.DeriveKEK("correct horse battery staple", salt)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same passphrase+salt")
	}

	k3 := svc.DeriveKEK("correct horse battery staple", bytes.Repeat([]byte{0x01}, 16))
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different KEKs for different salts")
	}
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	svc := NewKeyWrapService(nil)

	keys, err := GenerateCommKeys(nil)
	if err != nil {
		t.Fatalf("GenerateCommKeys error: %v", err)
	}
	kek := bytes.Repeat([]byte{0x2A}, 32)

	blob, err := svc.Wrap(keys, kek)
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}

	got, err := svc.Unwrap(blob, kek)
	if err != nil {
		t.Fatalf("Unwrap error: %v", err)
	}
	if !got.Equal(keys) {
		t.Fatalf("unwrapped keys mismatch")
	}
}

func TestUnwrap_WrongKEK(t *testing.T) {
	svc := NewKeyWrapService(nil)

	keys, _ := GenerateCommKeys(nil)
	blob, err := svc.Wrap(keys, bytes.Repeat([]byte{0x2A}, 32))
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}

	_, err = svc.Unwrap(blob, bytes.Repeat([]byte{0x2B}, 32))
	if !errors.Is(err, ErrUnwrap) {
		t.Fatalf("expected ErrUnwrap, got %v", err)
	}
}

func TestUnwrap_ShortBlob(t *testing.T) {
	svc := NewKeyWrapService(nil)

	_, err := svc.Unwrap([]byte{1, 2, 3}, bytes.Repeat([]byte{0x2A}, 32))
	if !errors.Is(err, ErrUnwrap) {
		t.Fatalf("expected ErrUnwrap, got %v", err)
	}
}

func TestWrap_UnusableKeys(t *testing.T) {
	svc := NewKeyWrapService(nil)

	_, err := svc.Wrap(CommKeys{}, bytes.Repeat([]byte{0x2A}, 32))
	if !errors.Is(err, ErrKey) {
		t.Fatalf("expected ErrKey, got %v", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyWrapService(nil)

	keys, _ := GenerateCommKeys(nil)
	sealed, err := svc.Seal(keys, "passphrase")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := svc.Open(sealed, "passphrase")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !got.Equal(keys) {
		t.Fatalf("opened keys mismatch")
	}

	if _, err = svc.Open(sealed, "wrong"); !errors.Is(err, ErrUnwrap) {
		t.Fatalf("expected ErrUnwrap for wrong passphrase, got %v", err)
	}
}

func TestSeal_DifferentEachTime(t *testing.T) {
	svc := NewKeyWrapService(nil)

	keys, _ := GenerateCommKeys(nil)
	s1, _ := svc.Seal(keys, "passphrase")
	s2, _ := svc.Seal(keys, "passphrase")

	if s1 == s2 {
		t.Fatalf("expected different sealed blobs for two seals")
	}
}

func TestOpen_Malformed(t *testing.T) {
	svc := NewKeyWrapService(nil)

	if _, err := svc.Open("%%%", "p"); !errors.Is(err, ErrUnwrap) {
		t.Fatalf("expected ErrUnwrap for bad base64, got %v", err)
	}
	if _, err := svc.Open("AAAA", "p"); !errors.Is(err, ErrUnwrap) {
		t.Fatalf("expected ErrUnwrap for short input, got %v", err)
	}
}
