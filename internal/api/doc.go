// Package api provides the HTTP transport for communicating with the
// Warden remote authority. It issues GETs and POSTs against the
// authority's base URL, handling HTTP basic auth, TLS client
// certificates, redirect following, and opt-in retry with exponential
// backoff for transient failures.
//
// # Error Handling
//
// Any non-200 status is returned as an [*APIError] carrying the status
// code and the response body as the human-readable reason. Failures
// before a status was received are returned as [*NetworkError].
//
// # Retry Behavior
//
// By default no retries are performed: the envelope protocol surfaces
// transport failures immediately and the caller owns retry policy. Pass
// [WithRetry] with a non-zero MaxRetries to opt in; retryable conditions
// default to network failures and 408/429/5xx responses, with
// exponentially increasing, jittered delays between attempts.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
