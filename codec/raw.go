package codec

// Bytes is an identity codec for []byte values. Useful with Invisible when
// the payload is already raw bytes and only the hiding step is wanted.
type Bytes struct{}

var _ Codec[[]byte] = Bytes{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between Go strings and bytes. No UTF-8 validation is
// performed; the hidden payload is opaque to the encoding.
type String struct{}

var _ Codec[string] = String{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
