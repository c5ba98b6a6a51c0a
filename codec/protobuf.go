package codec

import "google.golang.org/protobuf/proto"

// Protobuf is a Codec for generated protobuf messages.
// Deterministic marshaling is used so a message always hides the same way.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.Note { return &mypb.Note{} })
}

// NewProtobuf returns a codec that decodes into messages built by ctor.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

// Decode unmarshals b into a fresh message. Unknown fields are kept, so a
// value hidden by a newer schema survives a decode/encode round trip.
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
