package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation when deriving the key-wrapping key from
	// the authority's public key bytes.
	HKDFContext = "warden:envelope:v1"

	// AuthorityKeySize is the size of the remote authority's Ed25519
	// public key in bytes.
	AuthorityKeySize = 32

	// MessageKeySize is the size of the per-message symmetric key in bytes.
	MessageKeySize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16
)
