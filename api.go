package loadq

import (
	"fmt"
	"time"

	c "github.com/unkn0wn-root/loadq/codec"
	"github.com/unkn0wn-root/loadq/dataset"
	st "github.com/unkn0wn-root/loadq/store"
)

// LoaderOptions tune the cache-aside loader. Only Store is required; the
// defaults match the wire form of existing cached data (JSON, 5 minute TTL).
type LoaderOptions struct {
	// Required
	Store st.Store

	Codec      c.Codec[dataset.Snapshot] // nil => codec.JSON
	Logger     Logger                    // nil => NopLogger
	Hooks      Hooks                     // nil => NopHooks
	DefaultTTL time.Duration             // backs Load; 0 => 5m
}

// NewLoader builds a Loader around an explicitly owned store handle. The
// loader holds no per-key locks: concurrent misses on one key both load and
// both write, last writer wins.
func NewLoader(opts LoaderOptions) (*Loader, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("loadq: store is required")
	}
	l := &Loader{store: opts.Store}
	l.codec = opts.Codec
	if l.codec == nil {
		l.codec = c.JSON[dataset.Snapshot]{}
	}
	l.log = coalesce[Logger](opts.Logger, NopLogger{})
	l.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	l.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, 5*time.Minute)
	return l, nil
}

// QueueOptions tune a task queue. Only Store is required. The codec must be
// deterministic: claiming removes the exact bytes it read, so two encodes of
// one task must agree byte-for-byte.
type QueueOptions[T any] struct {
	// Required
	Store st.Store

	Codec  c.Codec[T] // nil => codec.JSON
	Logger Logger     // nil => NopLogger
	Hooks  Hooks      // nil => NopHooks
}

// NewQueue builds a queue/dispatcher pair over the given store. Two
// dispatchers draining one queue name concurrently can claim the same item
// before the slower removal lands; there is no leader election here.
func NewQueue[T any](opts QueueOptions[T]) (*Queue[T], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("loadq: store is required")
	}
	q := &Queue[T]{store: opts.Store}
	q.codec = opts.Codec
	if q.codec == nil {
		q.codec = c.JSON[T]{}
	}
	q.log = coalesce[Logger](opts.Logger, NopLogger{})
	q.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return q, nil
}
