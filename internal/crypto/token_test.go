package crypto

import (
	"encoding/json"
	"strconv"
	"testing"
)

const trustedTime int64 = 1_700_000_000

func TestCheckToken_FreshnessBoundary(t *testing.T) {
	t.Parallel()
	pub, priv := testAuthorityKey(t)

	tests := []struct {
		name   string
		offset int64
		want   TokenStatus
	}{
		{"exact", 0, TokenValid},
		{"upper bound inclusive", FreshnessWindow, TokenValid},
		{"just past upper bound", FreshnessWindow + 1, TokenStale},
		{"lower bound inclusive", -FreshnessWindow, TokenValid},
		{"just past lower bound", -(FreshnessWindow + 1), TokenStale},
		{"far future", 3600, TokenStale},
		{"far past", -86400, TokenStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := SignToken(trustedTime+tt.offset, priv)
			if got := CheckToken(token, trustedTime, pub); got != tt.want {
				t.Errorf("CheckToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckToken_Malformed(t *testing.T) {
	t.Parallel()
	pub, _ := testAuthorityKey(t)

	wrap := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		return ToBase64(raw)
	}
	validTime := ToBase64([]byte(strconv.FormatInt(trustedTime, 10)))

	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"base64 of non-json", ToBase64([]byte("once upon a time"))},
		{"bare number", wrap(12345)},
		{"array", wrap([]int{1, 2, 3})},
		{"quoted string", wrap("token")},
		{"null", ToBase64([]byte("null"))},
		{"empty object", wrap(map[string]string{})},
		{"missing signature", wrap(map[string]string{"time": validTime})},
		{"missing time", wrap(map[string]string{"signature": "c2ln"})},
		{"empty time", wrap(map[string]string{"time": "", "signature": "c2ln"})},
		{"time not base64", wrap(map[string]string{"time": "!!!", "signature": "c2ln"})},
		{"time not numeric", wrap(map[string]string{"time": ToBase64([]byte("yesterday")), "signature": "c2ln"})},
		{"signature not base64", wrap(map[string]string{"time": validTime, "signature": "!!!"})},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckToken(tt.token, trustedTime, pub); got != TokenMalformed {
				t.Errorf("CheckToken() = %v, want malformed", got)
			}
		})
	}
}

func TestCheckToken_TamperRejection(t *testing.T) {
	t.Parallel()
	pub, priv := testAuthorityKey(t)

	token := SignToken(trustedTime, priv)
	raw, err := FromBase64(token)
	if err != nil {
		t.Fatal(err)
	}
	var env TokenEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatal(err)
	}

	rebuild := func(env TokenEnvelope) string {
		out, _ := json.Marshal(env)
		return ToBase64(out)
	}

	t.Run("flipped signature bit", func(t *testing.T) {
		sig, _ := FromBase64(env.Signature)
		sig[0] ^= 0x01
		tampered := env
		tampered.Signature = ToBase64(sig)
		if got := CheckToken(rebuild(tampered), trustedTime, pub); got == TokenValid {
			t.Error("token with flipped signature bit verified")
		}
	})

	t.Run("flipped time bit", func(t *testing.T) {
		timeBytes, _ := FromBase64(env.Time)
		timeBytes[len(timeBytes)-1] ^= 0x01
		tampered := env
		tampered.Time = ToBase64(timeBytes)
		if got := CheckToken(rebuild(tampered), trustedTime, pub); got == TokenValid {
			t.Error("token with flipped time bit verified")
		}
	})

	t.Run("timestamp swapped within window", func(t *testing.T) {
		// Re-stating a different timestamp under the old signature must
		// fail signature verification even though the window check passes.
		tampered := env
		tampered.Time = ToBase64([]byte(strconv.FormatInt(trustedTime+1, 10)))
		if got := CheckToken(rebuild(tampered), trustedTime, pub); got != TokenForged {
			t.Errorf("CheckToken() = %v, want forged", got)
		}
	})
}

func TestCheckToken_WrongAuthority(t *testing.T) {
	t.Parallel()
	pub, _ := testAuthorityKey(t)
	_, otherPriv := testAuthorityKey(t)

	token := SignToken(trustedTime, otherPriv)
	if got := CheckToken(token, trustedTime, pub); got != TokenForged {
		t.Errorf("CheckToken() = %v, want forged", got)
	}
}

func TestCheckToken_BadKeySize(t *testing.T) {
	t.Parallel()
	_, priv := testAuthorityKey(t)

	token := SignToken(trustedTime, priv)

	// A wrong-size key must degrade to a non-valid status, never panic.
	for _, key := range [][]byte{nil, {0x01}, make([]byte, 64)} {
		if got := CheckToken(token, trustedTime, key); got == TokenValid {
			t.Errorf("CheckToken() with %d-byte key = valid", len(key))
		}
	}
}

func TestCheckToken_StaleBeforeSignature(t *testing.T) {
	t.Parallel()
	pub, priv := testAuthorityKey(t)

	// A stale timestamp is reported as stale even when the signature on
	// it is perfectly valid: the window check runs first.
	token := SignToken(trustedTime-FreshnessWindow-1, priv)
	if got := CheckToken(token, trustedTime, pub); got != TokenStale {
		t.Errorf("CheckToken() = %v, want stale", got)
	}
}

func TestTokenStatus_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status TokenStatus
		want   string
	}{
		{TokenMalformed, "malformed"},
		{TokenStale, "stale"},
		{TokenForged, "forged"},
		{TokenValid, "valid"},
		{TokenStatus(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("TokenStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
