package api

import "fmt"

// APIError represents a non-success HTTP response from the remote
// authority. Reason carries the response body, which the authority uses
// for human-readable failure detail.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("authority returned %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("authority returned %d", e.StatusCode)
}

// NetworkError represents a network-level failure before any HTTP status
// was received.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
