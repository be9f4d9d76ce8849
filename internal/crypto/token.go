package crypto

import (
	"encoding/json"
	"strconv"

	"github.com/cloudflare/circl/sign/ed25519"
)

// FreshnessWindow is the tolerance, in seconds, around the trusted
// timestamp within which an authority-issued token is accepted. The
// window is inclusive on both ends and bounds how long a captured token
// remains replayable.
const FreshnessWindow = 20

// TokenEnvelope is the wire structure of an authority-issued
// authentication token. Time holds the base64-encoded decimal-ASCII
// timestamp; Signature holds the base64-encoded Ed25519 signature over
// the raw timestamp bytes. Field names are fixed by the protocol.
type TokenEnvelope struct {
	Time      string `json:"time"`
	Signature string `json:"signature"`
}

// TokenStatus classifies the outcome of a token check. Callers only ever
// see the boolean collapse (valid or not), but the distinguishing reason
// is kept so tests can assert on it.
type TokenStatus int

const (
	// TokenMalformed means the token could not be decoded into a
	// well-formed envelope with both fields present and decodable.
	TokenMalformed TokenStatus = iota
	// TokenStale means the embedded timestamp lies outside the freshness
	// window around the trusted timestamp.
	TokenStale
	// TokenForged means the signature did not verify against the
	// authority key.
	TokenForged
	// TokenValid means the token is well-formed, fresh, and carries a
	// valid signature.
	TokenValid
)

// String returns the status name for test failure messages.
func (s TokenStatus) String() string {
	switch s {
	case TokenMalformed:
		return "malformed"
	case TokenStale:
		return "stale"
	case TokenForged:
		return "forged"
	case TokenValid:
		return "valid"
	default:
		return "unknown"
	}
}

// CheckToken validates an encoded authority token against the trusted
// timestamp (the verifier's own clock reading, in seconds). It is a pure
// function of its inputs and never panics on hostile input; every failure
// path resolves to a non-valid status.
func CheckToken(encoded string, trustedTimestamp int64, authorityKey []byte) TokenStatus {
	raw, err := FromBase64(encoded)
	if err != nil {
		return TokenMalformed
	}

	// Non-object payloads (bare numbers, arrays, strings) fail to
	// unmarshal into the struct; JSON null leaves both fields empty.
	var token TokenEnvelope
	if err := json.Unmarshal(raw, &token); err != nil {
		return TokenMalformed
	}
	if token.Time == "" || token.Signature == "" {
		return TokenMalformed
	}

	timeBytes, err := FromBase64(token.Time)
	if err != nil {
		return TokenMalformed
	}

	remoteTimestamp, err := strconv.ParseInt(string(timeBytes), 10, 64)
	if err != nil {
		return TokenMalformed
	}

	if remoteTimestamp < trustedTimestamp-FreshnessWindow ||
		remoteTimestamp > trustedTimestamp+FreshnessWindow {
		return TokenStale
	}

	signature, err := FromBase64(token.Signature)
	if err != nil {
		return TokenMalformed
	}

	// Verify panics on a wrong-size key, so guard sizes explicitly.
	if len(authorityKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return TokenForged
	}

	if !ed25519.Verify(ed25519.PublicKey(authorityKey), timeBytes, signature) {
		return TokenForged
	}

	return TokenValid
}
