// Package crypto implements the envelope protocol shared with the Warden
// remote authority: hybrid encryption of payloads and time-windowed
// verification of authority-issued tokens.
//
// # Algorithm Suite
//
//   - Ed25519: digital signatures over token timestamps. The authority's
//     public key anchors all verification in this package.
//
//   - AES-256-GCM: authenticated encryption for both the payload and the
//     wrapped per-message key. Provides confidentiality and integrity.
//
//   - HKDF-SHA-512 (RFC 5869): derives the key-wrapping key from the
//     authority's public key bytes with domain separation.
//
// # Protocol Note
//
// The wire protocol uses the SAME authority public key for sealing
// outbound data and opening inbound data. This is a fixed compatibility
// contract with the remote authority, not a conventional asymmetric
// exchange: the key-wrapping key is derived deterministically from the
// authority key bytes so both directions invert cleanly. Confidentiality
// against third parties therefore rests on the authority key itself being
// exchanged over an authenticated channel at enrolment time.
//
// # Fail-Closed Validation
//
// No envelope or token is ever partially decoded and trusted. If any
// required field is absent, empty, or malformed, the structure is rejected
// in its entirety before any cryptographic operation runs. Token checks
// classify failures ([TokenMalformed], [TokenStale], [TokenForged]) so
// tests can assert on the reason, but callers only see the boolean
// collapse at the facade.
//
// # Base64 Encoding
//
// All wire values (envelope fields, token fields, and the outer encoding
// of both structures) use standard base64 with padding (RFC 4648 §4) via
// [ToBase64]/[FromBase64].
package crypto
