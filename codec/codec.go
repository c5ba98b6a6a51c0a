// Package codec turns typed values into bytes and, through Invisible, into
// hidden text.
//
// Every serialized byte becomes two invisible code points, so output size
// matters more than usual: Msgpack and CBOR are the compact choices, JSON
// the portable one. Use a deterministic codec (CBOR with deterministic=true,
// Protobuf) when equal values must hide as identical text, for example to
// compare or deduplicate hidden values without decoding them.
//
// LimitCodec bounds sizes on either side. Wrapped around Invisible it caps
// the hidden text, wrapped around the inner codec it caps the value bytes.
package codec

// Codec encodes/decodes values V to []byte before they are hidden.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
