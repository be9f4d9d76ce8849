package wardenapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teamdeeson/wardenapi/internal/crypto"
)

// Remote authority endpoints. The paths are a fixed protocol contract.
const (
	// PublicKeyPath serves the authority's base64-encoded public key.
	PublicKeyPath = "/public-key"
	// SiteUpdatePath accepts encrypted site data.
	SiteUpdatePath = "/site-update"
)

// Transport fetches bytes from and pushes bytes to the remote authority.
// The production implementation is the HTTP client in internal/api,
// created by New; tests substitute fakes via WithTransport.
type Transport interface {
	// Fetch retrieves the body at path. A non-success response is an error.
	Fetch(ctx context.Context, path string) ([]byte, error)
	// Post pushes body to path and returns the response body.
	Post(ctx context.Context, path string, body []byte) ([]byte, error)
}

// Client is the entry point for exchanging data with the Warden remote
// authority: it encrypts outbound payloads, decrypts inbound ones, and
// verifies authority-issued tokens. Client is safe for concurrent use.
type Client struct {
	transport Transport
	keys      *keyCache
}

// New creates a client for the remote authority at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	transport, err := buildTransport(baseURL, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		keys:      newKeyCache(transport),
	}, nil
}

// PublicKey returns the remote authority's public key, fetching and
// caching it on first use. The key is fetched at most once per process;
// a failed fetch is retried on the next call.
func (c *Client) PublicKey(ctx context.Context) ([]byte, error) {
	return c.keys.get(ctx)
}

// Encrypt serializes data and seals it for the remote authority,
// returning the encoded envelope. The serialization is JSON, the same
// form the authority deserializes on its side.
func (c *Client) Encrypt(ctx context.Context, data any) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", &EncryptionError{Message: "serialize payload", Err: err}
	}

	key, err := c.keys.get(ctx)
	if err != nil {
		return "", err
	}

	sealed, err := crypto.Seal(plaintext, key)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	return sealed, nil
}

// Decrypt opens an encoded envelope produced by the remote authority and
// unmarshals the plaintext into out. The envelope is validated in its
// entirety before any key fetch or cryptographic operation runs; a
// malformed envelope is an EncryptionError matching ErrMessageNotUnderstood.
func (c *Client) Decrypt(ctx context.Context, cypherText string, out any) error {
	env, err := crypto.ParseEnvelope(cypherText)
	if err != nil {
		return wrapCryptoError(err)
	}

	key, err := c.keys.get(ctx)
	if err != nil {
		return err
	}

	plaintext, err := env.Open(key)
	if err != nil {
		return wrapCryptoError(err)
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return &EncryptionError{Message: "deserialize payload", Err: err}
	}

	return nil
}

// IsValidToken reports whether an authority-issued token is authentic and
// fresh. trustedTimestamp is the verifier's own clock reading in seconds;
// the token's embedded timestamp must lie within 20 seconds of it
// (inclusive) and carry a valid signature. IsValidToken never returns an
// error: every failure, including a failed key fetch, degrades to false.
func (c *Client) IsValidToken(ctx context.Context, token string, trustedTimestamp int64) bool {
	key, err := c.keys.get(ctx)
	if err != nil {
		return false
	}
	return crypto.CheckToken(token, trustedTimestamp, key) == crypto.TokenValid
}

// PostData encrypts data and pushes the resulting envelope to the
// authority's site-update endpoint.
func (c *Client) PostData(ctx context.Context, data any) error {
	encrypted, err := c.Encrypt(ctx, data)
	if err != nil {
		return err
	}

	if _, err := c.transport.Post(ctx, SiteUpdatePath, []byte(encrypted)); err != nil {
		return fmt.Errorf("post site update: %w", wrapTransportError(err))
	}

	return nil
}
