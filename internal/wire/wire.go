package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1

	// KindRaw frames an opaque byte payload. It is the only kind so far.
	KindRaw byte = 1

	hdrLen = 4 + 1 + 1 + 4
)

var (
	ErrCorrupt = errors.New("ghostext: corrupt frame")
	magic4     = [...]byte{'G', 'H', 'S', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

func validKind(k byte) bool { return k == KindRaw }

// FrameLen returns the encoded size of a frame carrying n payload bytes.
func FrameLen(n int) int { return hdrLen + n }

// Frame: magic(4) | ver(1) | kind(1) | vlen(u32 be) | payload(vlen)
func AppendFrame(dst []byte, kind byte, payload []byte) []byte {
	if !validKind(kind) {
		panic("ghostext: invalid frame kind")
	}
	if uint64(len(payload)) > 0xFFFFFFFF {
		panic("ghostext: frame payload too large")
	}

	dst = append(dst, magic4[:]...)
	dst = append(dst, version, kind)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	dst = append(dst, u4[:]...)

	return append(dst, payload...)
}

func EncodeFrame(kind byte, payload []byte) []byte {
	return AppendFrame(make([]byte, 0, FrameLen(len(payload))), kind, payload)
}

// DecodeFrame validates b and returns its kind and a slice of b holding the
// payload. The frame must span b exactly.
func DecodeFrame(b []byte) (kind byte, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || !validKind(b[5]) {
		return 0, nil, ErrCorrupt
	}
	kind = b[5]

	off := 6
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // overflow-safe, no trailing bytes
		return 0, nil, ErrCorrupt
	}

	return kind, b[off : off+vlen], nil
}
