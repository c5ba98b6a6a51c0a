package codec

import "fmt"

// LimitCodec wraps another codec to enforce a maximum serialized size on
// both sides. Encode refuses values whose serialized form exceeds MaxEncode
// so oversized payloads never reach a text channel with a length cap
// (commit subjects, chat messages). Decode refuses inputs larger than
// MaxDecode without invoking Inner. A limit <= 0 is disabled.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxEncode is the maximum permitted serialized length in bytes.
	MaxEncode int
	// MaxDecode is the maximum permitted length of the incoming payload.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, fmt.Errorf("codec: encoded payload too large: %d > %d", len(b), c.MaxEncode)
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
