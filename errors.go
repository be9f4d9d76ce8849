package wardenapi

import (
	"errors"
	"fmt"

	"github.com/teamdeeson/wardenapi/internal/api"
	"github.com/teamdeeson/wardenapi/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrRemoteCommunication is returned when an exchange with the remote
	// authority fails.
	ErrRemoteCommunication = errors.New("remote authority communication failed")

	// ErrEncryption is returned when sealing or opening an envelope fails.
	ErrEncryption = errors.New("encryption failed")

	// ErrMessageNotUnderstood is returned when an inbound envelope is not
	// a well-formed two-field structure.
	ErrMessageNotUnderstood = errors.New("message not understood")
)

// WardenError is implemented by all SDK errors.
type WardenError interface {
	error
	WardenError() // marker method
}

// RemoteCommunicationError represents a failed exchange with the remote
// authority. StatusCode is the HTTP status for protocol-level failures,
// or 0 when the failure occurred before a response was received.
type RemoteCommunicationError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *RemoteCommunicationError) Error() string {
	if e.StatusCode > 0 {
		if e.Reason != "" {
			return fmt.Sprintf("remote authority error %d: %s", e.StatusCode, e.Reason)
		}
		return fmt.Sprintf("remote authority error %d", e.StatusCode)
	}
	return fmt.Sprintf("remote authority unreachable: %s", e.Reason)
}

// Unwrap returns the underlying error.
func (e *RemoteCommunicationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *RemoteCommunicationError) Is(target error) bool {
	return target == ErrRemoteCommunication
}

// WardenError implements the WardenError interface.
func (e *RemoteCommunicationError) WardenError() {}

// EncryptionError represents a failure to seal or open an envelope:
// a crypto primitive failure, a malformed envelope, or empty/identity
// ciphertext. NotUnderstood distinguishes malformed inbound envelopes
// from primitive failures.
type EncryptionError struct {
	Message       string
	Err           error
	NotUnderstood bool
}

func (e *EncryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("encryption error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("encryption error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	if target == ErrEncryption {
		return true
	}
	return target == ErrMessageNotUnderstood && e.NotUnderstood
}

// WardenError implements the WardenError interface.
func (e *EncryptionError) WardenError() {}

// wrapTransportError converts internal transport errors to public errors
// so that errors.Is() checks work with public sentinel errors.
func wrapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &RemoteCommunicationError{
			StatusCode: apiErr.StatusCode,
			Reason:     apiErr.Reason,
			Err:        err,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &RemoteCommunicationError{
			Reason: netErr.Err.Error(),
			Err:    err,
		}
	}

	return err
}

// wrapCryptoError converts internal crypto errors to public errors.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	return &EncryptionError{
		Message:       "envelope operation failed",
		Err:           err,
		NotUnderstood: errors.Is(err, crypto.ErrMessageNotUnderstood),
	}
}
