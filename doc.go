// Package wardenapi provides a Go client SDK for Warden, a central
// management server ("the remote authority") that managed sites exchange
// encrypted data with over untrusted transport.
//
// The SDK seals outbound payloads in a hybrid-encrypted envelope keyed by
// the authority's public key, opens inbound envelopes, and verifies
// authority-issued tokens within a ±20 second freshness window. The
// authority key is fetched once per process and cached.
//
// Basic usage:
//
//	client, err := wardenapi.New("https://warden.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Push encrypted site data to the authority
//	err = client.PostData(ctx, map[string]string{"core": "10.3.1"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Verify an inbound request really came from the authority
//	if client.IsValidToken(ctx, token, time.Now().Unix()) {
//	    // handle the request
//	}
//
// Encryption and transport failures are returned as typed errors
// ([*EncryptionError], [*RemoteCommunicationError]) that match the
// package sentinels with errors.Is. Token verification is fail-closed
// and never returns an error: any malformed, stale, or forged token is
// simply not valid.
package wardenapi
