package crypto

import (
	"crypto/rand"
	"encoding/json"
	"strconv"

	"github.com/cloudflare/circl/sign/ed25519"
)

// GenerateAuthorityKey creates a fresh Ed25519 keypair standing in for the
// remote authority. This is intended for testing only; real deployments
// only ever see the authority's public half. Since this package is
// internal, this function cannot be accessed by external code.
func GenerateAuthorityKey() (publicKey, privateKey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// SignToken builds an encoded token envelope for the given timestamp,
// signed with the authority private key. Intended for testing only.
func SignToken(timestamp int64, privateKey []byte) string {
	timeBytes := []byte(strconv.FormatInt(timestamp, 10))
	signature := ed25519.Sign(ed25519.PrivateKey(privateKey), timeBytes)

	token := TokenEnvelope{
		Time:      ToBase64(timeBytes),
		Signature: ToBase64(signature),
	}
	raw, _ := json.Marshal(token)
	return ToBase64(raw)
}
