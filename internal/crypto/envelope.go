package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
)

// Envelope is the two-field wire structure carrying a hybrid-encrypted
// payload. Key holds the per-message symmetric key wrapped under the
// authority key; Message holds the payload ciphertext. Both fields are
// base64-encoded, and the serialized envelope is base64-encoded again
// for transmission. The field names are a compatibility contract with
// the remote authority.
type Envelope struct {
	Key     string `json:"key"`
	Message string `json:"message"`

	// Decoded field contents, populated by ParseEnvelope.
	keyCiphertext     []byte
	messageCiphertext []byte
}

// Seal hybrid-encrypts plaintext for the remote authority and returns the
// encoded envelope.
//
// The sealing process:
//  1. Generate a fresh random 32-byte message key
//  2. AES-256-GCM encrypt the plaintext with the message key
//  3. Wrap the message key with AES-256-GCM under a key derived from the
//     authority's public key bytes (HKDF-SHA-512)
//  4. Base64-encode both ciphertexts into the envelope, serialize it,
//     and base64-encode the whole thing
//
// Empty or no-op ciphertext from any step is a hard failure.
func Seal(plaintext, authorityKey []byte) (string, error) {
	if len(authorityKey) == 0 {
		return "", ErrEmptyAuthorityKey
	}
	if len(plaintext) == 0 {
		return "", ErrEmptyPlaintext
	}

	messageKey := make([]byte, MessageKeySize)
	if _, err := rand.Read(messageKey); err != nil {
		return "", fmt.Errorf("generate message key: %w", err)
	}

	messageCiphertext, err := EncryptAES(messageKey, plaintext)
	if err != nil {
		return "", fmt.Errorf("encrypt message: %w", err)
	}

	wrapKey, err := deriveWrapKey(authorityKey)
	if err != nil {
		return "", err
	}

	keyCiphertext, err := EncryptAES(wrapKey, messageKey)
	if err != nil {
		return "", fmt.Errorf("wrap message key: %w", err)
	}

	if len(keyCiphertext) == 0 || len(messageCiphertext) == 0 {
		return "", ErrEmptyCiphertext
	}
	if bytes.Equal(messageCiphertext, plaintext) {
		return "", ErrIdentityCiphertext
	}

	env := Envelope{
		Key:     ToBase64(keyCiphertext),
		Message: ToBase64(messageCiphertext),
	}

	// Marshal of a two-string struct cannot fail.
	raw, _ := json.Marshal(env)

	return ToBase64(raw), nil
}

// ParseEnvelope decodes and validates an encoded envelope without running
// any cryptographic operation. A result is returned only when the outer
// base64 and JSON decode cleanly into an object whose key and message
// fields are present, non-empty, and themselves valid base64. Anything
// else is rejected in its entirety with ErrMessageNotUnderstood.
func ParseEnvelope(encoded string) (*Envelope, error) {
	raw, err := FromBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMessageNotUnderstood, err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: invalid envelope: %v", ErrMessageNotUnderstood, err)
	}

	if env.Key == "" || env.Message == "" {
		return nil, fmt.Errorf("%w: missing key or message field", ErrMessageNotUnderstood)
	}

	env.keyCiphertext, err = FromBase64(env.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key field: %v", ErrMessageNotUnderstood, err)
	}

	env.messageCiphertext, err = FromBase64(env.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid message field: %v", ErrMessageNotUnderstood, err)
	}

	if len(env.keyCiphertext) == 0 || len(env.messageCiphertext) == 0 {
		return nil, fmt.Errorf("%w: empty cryptographic material", ErrMessageNotUnderstood)
	}

	return &env, nil
}

// Open is the inverse of Seal, parameterized by the same authority key:
// it unwraps the message key and decrypts the payload ciphertext.
// The envelope must come from ParseEnvelope.
func (e *Envelope) Open(authorityKey []byte) ([]byte, error) {
	if len(authorityKey) == 0 {
		return nil, ErrEmptyAuthorityKey
	}
	if len(e.keyCiphertext) == 0 || len(e.messageCiphertext) == 0 {
		return nil, fmt.Errorf("%w: envelope not parsed", ErrMessageNotUnderstood)
	}

	wrapKey, err := deriveWrapKey(authorityKey)
	if err != nil {
		return nil, err
	}

	messageKey, err := DecryptAES(wrapKey, e.keyCiphertext)
	if err != nil {
		return nil, fmt.Errorf("unwrap message key: %w", err)
	}
	if len(messageKey) != MessageKeySize {
		return nil, ErrInvalidMessageKey
	}

	plaintext, err := DecryptAES(messageKey, e.messageCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt message: %w", err)
	}

	return plaintext, nil
}

// Open decodes an encoded envelope and decrypts it with the authority key.
func Open(encoded string, authorityKey []byte) ([]byte, error) {
	env, err := ParseEnvelope(encoded)
	if err != nil {
		return nil, err
	}
	return env.Open(authorityKey)
}
