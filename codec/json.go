package codec

import "encoding/json"

// JSON is the default codec. It produces the same wire form as previously
// cached data, so snapshots written by older tooling decode cleanly.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
