package codec

import "fmt"

// LimitCodec wraps another codec and rejects oversized payloads at Decode
// time. Encode is forwarded to Inner unchanged. MaxDecode <= 0 disables the
// check.
//
// Cached entries come back from a store shared with other writers; capping
// the decode size keeps one runaway snapshot from exhausting the reader.
type LimitCodec[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner interface {
		Encode(V) ([]byte, error)
		Decode([]byte) (V, error)
	}
	// MaxDecode is the largest payload (in bytes) Decode accepts. Longer
	// inputs error without invoking Inner.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
