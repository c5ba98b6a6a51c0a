// Package ghostext hides arbitrary bytes in text as runs of invisible
// Unicode code points and recovers them again.
//
// Every payload byte becomes two code points from a fixed 16-entry
// Alphabet, high nibble first. Decoding scans the text left to right and
// ignores every code point outside the alphabet (carriers), so the hidden
// run survives being pasted into, around or between ordinary characters.
// An odd number of alphabet members fails with ErrTruncatedPayload.
//
// Components:
//   - Alphabet: 16 distinct zero-width code points. VariationSelectors
//     (U+FE00..U+FE0F) is the default.
//   - Encoding: pure, stateless encode/decode over one Alphabet, plus
//     streaming NewEncoder/NewDecoder and Hide (cover text placement).
//   - Envelope: start/end markers around a framed payload, so a message can
//     be found among other invisible runs.
//   - Codec: Encoding + Envelope with Logger, Hooks and a size limit.
//
// Quick use:
//
//	s := ghostext.Encode([]byte("Hi!"))  // 6 invisible code points
//	b, err := ghostext.Decode("X" + s + "Y")
//
// Typed values travel hidden through codec.Invisible, which pairs any
// codec.Codec[V] (JSON, CBOR, msgpack, protobuf) with an Encoding.
package ghostext
