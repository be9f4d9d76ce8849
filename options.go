package wardenapi

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/teamdeeson/wardenapi/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	username   string
	password   string
	clientCert *tls.Certificate
	retries    int
	transport  Transport
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client for the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the transport request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithBasicAuth sets HTTP basic auth credentials sent to the remote
// authority on every request.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithClientCertificate sets a TLS client certificate presented to the
// remote authority.
func WithClientCertificate(cert tls.Certificate) Option {
	return func(c *clientConfig) {
		c.clientCert = &cert
	}
}

// WithRetries sets the number of transport-level retries for transient
// failures. The default is 0: the SDK surfaces failures immediately and
// the caller owns retry policy.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithTransport replaces the HTTP transport entirely. Intended for tests
// and for hosts that already own an authority connection.
func WithTransport(transport Transport) Option {
	return func(c *clientConfig) {
		c.transport = transport
	}
}

// buildTransport creates the production HTTP transport unless one was
// injected via WithTransport.
func buildTransport(baseURL string, cfg *clientConfig) (Transport, error) {
	if cfg.transport != nil {
		return cfg.transport, nil
	}
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	apiOpts := []api.Option{}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.username != "" {
		apiOpts = append(apiOpts, api.WithBasicAuth(cfg.username, cfg.password))
	}
	if cfg.clientCert != nil {
		apiOpts = append(apiOpts, api.WithClientCertificate(*cfg.clientCert))
	}
	if cfg.retries > 0 {
		retry := api.DefaultRetryConfig()
		retry.MaxRetries = cfg.retries
		apiOpts = append(apiOpts, api.WithRetry(retry))
	}

	return api.New(baseURL, apiOpts...)
}
