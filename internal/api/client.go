package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP transport to the remote authority. It issues plain
// GETs and POSTs against the authority's base URL, with optional HTTP
// basic auth and a TLS client certificate. Redirects are followed with
// the default policy of the underlying http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	username   string
	password   string
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBasicAuth sets HTTP basic auth credentials sent on every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithClientCertificate sets a TLS client certificate presented to the
// remote authority during the handshake.
func WithClientCertificate(cert tls.Certificate) Option {
	return func(c *Client) {
		transport, ok := c.httpClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.Certificates = append(transport.TLSClientConfig.Certificates, cert)
		c.httpClient.Transport = transport
	}
}

// WithRetry sets the retry policy for failed requests. The default policy
// performs no retries; callers own retry behavior.
func WithRetry(retry *RetryConfig) Option {
	return func(c *Client) {
		if retry != nil {
			c.retry = retry
		}
	}
}

// New creates a new transport client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fetch issues a GET against path and returns the response body.
// Any non-200 status is an *APIError.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post pushes body to path and returns the response body.
// Any non-200 status is an *APIError.
func (c *Client) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := c.baseURL + path

	for attempt := 0; ; attempt++ {
		respBody, statusCode, err := c.doOnce(ctx, method, url, body)
		if err != nil {
			if c.retry.ShouldRetry(attempt, 0) {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, &NetworkError{Err: err, URL: url, Attempt: attempt + 1}
		}

		if statusCode != http.StatusOK {
			if c.retry.ShouldRetry(attempt, statusCode) {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, &APIError{StatusCode: statusCode, Reason: string(respBody)}
		}

		return respBody, nil
	}
}

// doOnce performs a single request attempt. The request is rebuilt per
// attempt because the body reader is consumed on each send.
func (c *Client) doOnce(ctx context.Context, method, url string, body []byte) ([]byte, int, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	if body != nil {
		req.Header.Set("Content-Type", "text/plain")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}
