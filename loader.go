package loadq

import (
	"context"
	"errors"
	"time"

	c "github.com/unkn0wn-root/loadq/codec"
	"github.com/unkn0wn-root/loadq/dataset"
	st "github.com/unkn0wn-root/loadq/store"
)

// cacheKeyPrefix namespaces cached snapshots inside the store.
const cacheKeyPrefix = "data:"

// LoadFunc produces a snapshot from the underlying source. It must be pure
// with respect to the cache: same source, same result, modulo staleness.
type LoadFunc func(ctx context.Context) (*dataset.Snapshot, error)

// Loader wraps an expensive load behind get-or-compute-and-store semantics.
// A single logical actor per instance is assumed; see NewLoader for the
// concurrent-miss behavior.
type Loader struct {
	store      st.Store
	codec      c.Codec[dataset.Snapshot]
	log        Logger
	hooks      Hooks
	defaultTTL time.Duration
}

// Load is SmartLoad with the configured default TTL.
func (l *Loader) Load(ctx context.Context, sourceID string, fn LoadFunc) (*dataset.Snapshot, error) {
	return l.SmartLoad(ctx, sourceID, l.defaultTTL, fn)
}

// SmartLoad returns the cached snapshot for sourceID, or invokes fn on a
// miss, caches the result for ttl and returns it.
//
// The hit path costs one store round-trip and never invokes fn. A miss
// invokes fn exactly once; fn failures propagate uncached (no negative
// caching). The write-back is best-effort: a store write failure degrades to
// "uncached" and the fresh snapshot is still returned. On an unconnected
// store everything passes through as a miss.
func (l *Loader) SmartLoad(ctx context.Context, sourceID string, ttl time.Duration, fn LoadFunc) (*dataset.Snapshot, error) {
	if ttl <= 0 {
		return nil, &InvalidTTLError{TTL: ttl}
	}

	key := cacheKeyPrefix + sourceID
	raw, ok, err := l.store.Get(ctx, key)
	switch {
	case err != nil:
		l.log.Warn("cache read failed, treating as miss", Fields{"key": key, "err": err})
		l.hooks.CacheMiss(sourceID, "store_error")
	case ok:
		snap, derr := l.codec.Decode(raw)
		if derr == nil {
			l.hooks.CacheHit(sourceID)
			l.log.Debug("cache hit", Fields{"key": key, "rows": snap.RowCount})
			return &snap, nil
		}
		// self-heal corrupt entry, then load fresh
		_, _ = l.store.Del(ctx, key)
		l.hooks.SelfHeal(key)
		l.hooks.CacheMiss(sourceID, "decode")
		l.log.Warn("corrupt cache entry dropped", Fields{"key": key, "err": derr})
	default:
		l.hooks.CacheMiss(sourceID, "absent")
		l.log.Debug("cache miss", Fields{"key": key})
	}

	snap, err := fn(ctx)
	if err != nil {
		return nil, &LoadError{SourceID: sourceID, Err: err}
	}
	if snap == nil {
		return nil, &LoadError{SourceID: sourceID, Err: errors.New("load returned no snapshot")}
	}
	if err := snap.Validate(); err != nil {
		return nil, &LoadError{SourceID: sourceID, Err: err}
	}

	norm := snap.Normalized()
	payload, err := l.codec.Encode(*norm)
	if err != nil {
		// cannot serialize => cannot cache; the load itself still succeeded
		l.log.Error("snapshot encode failed, returning uncached", Fields{"key": key, "err": err})
		return norm, nil
	}
	if err := l.store.Set(ctx, key, payload, ttl); err != nil {
		l.hooks.StoreWriteFailed(key, err)
		l.log.Warn("cache write failed, returning uncached", Fields{"key": key, "err": err})
		return norm, nil
	}
	l.log.Debug("snapshot cached", Fields{"key": key, "rows": norm.RowCount, "ttl": ttl})
	return norm, nil
}

// Invalidate removes the cached snapshot for sourceID, reporting whether an
// entry existed. TTL expiry inside the store is the only other invalidation.
func (l *Loader) Invalidate(ctx context.Context, sourceID string) (bool, error) {
	return l.store.Del(ctx, cacheKeyPrefix+sourceID)
}
