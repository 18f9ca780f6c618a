// Package loadq caches expensive, deterministic dataset loads behind a
// TTL-bounded key-value store and coordinates deferred work through a
// persistent FIFO queue on the same store.
//
// Components:
//   - store.Store: byte store with TTLs, glob scans and list primitives
//     (Redis in production, in-process mem store for tests).
//   - Loader: cache-aside wrapper around a LoadFunc. Hit paths never invoke
//     the loader; misses load, normalize, write back best-effort.
//   - Queue[T]: durable hand-off of serialized task descriptors. Drain claims
//     the oldest item by value-match removal and isolates handler failures.
//   - codec.Codec[V]: (de)serializes values; JSON by default for wire
//     compatibility with existing cached data.
//
// Keys:
//
//	data:<source_id>                     - cached snapshots
//	excel_data:<basename>:<selector>     - migrated snapshot source ids
//	processed:<operation>:<YYYYMMDD>     - derived results
//
// Cache-aside pattern:
//
//	snap, err := loader.SmartLoad(ctx, "payroll.dat", time.Minute, func(ctx context.Context) (*dataset.Snapshot, error) {
//	    return dataset.ReadCSV("data/payroll.dat")
//	})
//
// No operation retries automatically; store connectivity failures degrade to
// uncached behavior and retry policy stays with the caller.
package loadq
