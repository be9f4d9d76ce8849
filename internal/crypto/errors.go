package crypto

import "errors"

var (
	// ErrMessageNotUnderstood is returned when an encoded envelope cannot
	// be decoded into the expected two-field structure. This includes
	// malformed base64, malformed JSON, and missing or empty fields.
	ErrMessageNotUnderstood = errors.New("message not understood")

	// ErrEmptyAuthorityKey is returned when a seal or open operation is
	// attempted without the authority's public key.
	ErrEmptyAuthorityKey = errors.New("authority public key is empty")

	// ErrEmptyPlaintext is returned when there is nothing to seal.
	ErrEmptyPlaintext = errors.New("plaintext is empty")

	// ErrEmptyCiphertext is returned when a seal operation produced
	// zero-length ciphertext for either envelope field.
	ErrEmptyCiphertext = errors.New("sealing produced empty ciphertext")

	// ErrIdentityCiphertext is returned when the message ciphertext is
	// byte-identical to the plaintext. A no-op encryption must never be
	// treated as success.
	ErrIdentityCiphertext = errors.New("ciphertext identical to plaintext")

	// ErrDecryptionFailed is returned when decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidMessageKey is returned when unwrapping yields a message
	// key of the wrong size.
	ErrInvalidMessageKey = errors.New("invalid message key size")
)
