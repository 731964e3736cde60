package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_wrap_service_mock.go -package=mock

// KeyWrapService protects communication keys at rest. It knows nothing about
// the network or the database; its only job is to derive a key-encryption
// key (KEK) from a passphrase and seal or open [CommKeys] with it.
//
// Scheme:
//
//	Salt   = GenerateSalt()                  (step 1)
//	KEK    = DeriveKEK(passphrase, salt)     (step 2)
//	Sealed = Wrap(keys, KEK)                 (step 3)
//
// [KeyWrapService.Seal] and [KeyWrapService.Open] run all three steps and
// keep the salt next to the ciphertext.
type KeyWrapService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it only
	// makes equal passphrases produce different KEKs.
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit KEK from passphrase and salt with
	// Argon2id. The KEK only ever exists in memory.
	DeriveKEK(passphrase string, salt []byte) []byte

	// Wrap encrypts the serialized key pair with kek using AES-256-GCM and
	// returns nonce ‖ ciphertext.
	Wrap(keys CommKeys, kek []byte) ([]byte, error)

	// Unwrap reverses Wrap. Returns an error wrapping [ErrUnwrap] if
	// authentication fails, which almost always means a wrong KEK.
	Unwrap(blob, kek []byte) (CommKeys, error)

	// Seal runs GenerateSalt, DeriveKEK and Wrap and returns
	// base64(salt ‖ nonce ‖ ciphertext).
	Seal(keys CommKeys, passphrase string) (string, error)

	// Open reverses Seal.
	Open(sealed, passphrase string) (CommKeys, error)
}
