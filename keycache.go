package wardenapi

import (
	"context"
	"strings"
	"sync"

	"github.com/teamdeeson/wardenapi/internal/crypto"
)

// keyCache holds the remote authority's public key for the lifetime of
// the process, fetching it on first use. It is the only shared mutable
// state in the SDK: the mutex serializes check-then-fetch-then-store so
// at most one fetch is in flight and every caller observes either an
// empty cache or one fully populated key.
type keyCache struct {
	transport Transport

	mu  sync.Mutex
	key []byte
}

func newKeyCache(transport Transport) *keyCache {
	return &keyCache{transport: transport}
}

// get returns the cached authority public key, fetching and decoding it
// on first use. A failed fetch leaves the cache empty so the next call
// retries; there is no negative caching.
func (k *keyCache) get(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return k.key, nil
	}

	body, err := k.transport.Fetch(ctx, PublicKeyPath)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	key, err := crypto.FromBase64(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, &RemoteCommunicationError{
			StatusCode: 200,
			Reason:     "malformed public key body",
			Err:        err,
		}
	}
	if len(key) == 0 {
		return nil, &RemoteCommunicationError{
			StatusCode: 200,
			Reason:     "empty public key body",
		}
	}

	k.key = key
	return k.key, nil
}
