// Package codec provides pluggable serialization for cached snapshots and
// queued task descriptors. Queue claiming removes items by byte equality, so
// codecs used with queues must encode deterministically (all codecs here do
// for struct values).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
