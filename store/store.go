// Package store defines the key-value store abstraction used by loadq.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation). List operations
// compare values byte-for-byte; a store that transforms stored values breaks
// value-match removal.
//
// Every operation is synchronous and bounded: implementations apply a network
// timeout per call and surface the timeout as an error rather than hang.
// Connection loss is not retried anywhere in this package; retry policy
// belongs to the caller.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned by every operation on a store whose connection
// was never established (or has been closed). Callers are expected to degrade
// to uncached behavior rather than fail.
var ErrUnavailable = errors.New("store: unavailable")

// Store is a minimal byte store with TTLs, glob key scans and list
// primitives. Must be safe for concurrent use.
type Store interface {
	// Ping verifies connectivity. Never retried internally.
	Ping(ctx context.Context) error

	// Connected reports, without error, whether a connection is established.
	Connected() bool

	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. ttl <= 0 means no expiry;
	// callers that forbid unexpiring entries validate before calling.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Del removes a key, reporting whether it existed.
	Del(ctx context.Context, key string) (bool, error)

	// Keys returns all keys matching a glob-style pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)

	// ListPush prepends value to the named list, creating it if absent.
	ListPush(ctx context.Context, key string, value []byte) error

	// ListRemove deletes occurrences of value from the named list and
	// returns how many were removed. Count follows Redis LREM: count > 0
	// removes up to count matches scanning from the push end, count < 0
	// scans from the tail, count == 0 removes all matches.
	ListRemove(ctx context.Context, key string, value []byte, count int64) (int64, error)

	// ListRange returns elements [start, stop] of the named list; stop == -1
	// means the final element. A missing list yields an empty result.
	ListRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
