package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// deriveWrapKey derives the AES-256 key-wrapping key from the authority's
// public key bytes. The protocol uses the same authority key for sealing
// outbound data and opening inbound data, so the wrapping key must be a
// pure function of the key bytes.
func deriveWrapKey(authorityKey []byte) ([]byte, error) {
	if len(authorityKey) == 0 {
		return nil, ErrEmptyAuthorityKey
	}
	return DeriveKey(authorityKey, nil, []byte(HKDFContext), AESKeySize)
}
