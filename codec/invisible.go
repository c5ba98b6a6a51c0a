package codec

import (
	"fmt"

	"github.com/unkn0wn-root/ghostext"
)

// Invisible serializes V with Inner and hides the bytes as invisible text.
// Decode accepts text with carriers around or between the hidden code
// points, so values can be pulled out of a whole message body.
//
// The output of Encode is UTF-8 text, not the serialized form; Invisible is
// itself a Codec[V] and can be wrapped by LimitCodec.
type Invisible[V any] struct {
	Inner    Codec[V]
	Encoding *ghostext.Encoding // nil => ghostext.StdEncoding
}

var _ Codec[[]byte] = Invisible[[]byte]{}

// NewInvisible pairs inner with ghostext.StdEncoding.
func NewInvisible[V any](inner Codec[V]) Invisible[V] {
	return Invisible[V]{Inner: inner, Encoding: ghostext.StdEncoding}
}

func (c Invisible[V]) encoding() *ghostext.Encoding {
	if c.Encoding == nil {
		return ghostext.StdEncoding
	}
	return c.Encoding
}

func (c Invisible[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return c.encoding().AppendEncode(nil, b), nil
}

func (c Invisible[V]) Decode(text []byte) (V, error) {
	b, err := c.encoding().AppendDecode(nil, text)
	if err != nil {
		var zero V
		return zero, err
	}
	v, err := c.Inner.Decode(b)
	if err != nil {
		return v, fmt.Errorf("codec: decode hidden value: %w", err)
	}
	return v, nil
}

// EncodeString is Encode returning a string.
func (c Invisible[V]) EncodeString(v V) (string, error) {
	b, err := c.Encode(v)
	return string(b), err
}

// DecodeString is Decode over a string.
func (c Invisible[V]) DecodeString(text string) (V, error) {
	return c.Decode([]byte(text))
}
