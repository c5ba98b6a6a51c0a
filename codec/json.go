package codec

import "encoding/json"

// JSON is a Codec backed by encoding/json. The zero value is ready to use.
// JSON is the most portable choice when the other side of the channel is
// not written in Go, at the cost of two code points per JSON byte.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
