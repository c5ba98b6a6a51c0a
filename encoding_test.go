package ghostext

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, e *Encoding, s string) []byte {
	t.Helper()
	b, err := e.DecodeString(s)
	if err != nil {
		t.Fatalf("DecodeString error: %v", err)
	}
	return b
}

func randomPayload(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

var encodings = []struct {
	name string
	e    *Encoding
}{
	{"std", StdEncoding},
	{"supplement", SupplementEncoding},
}

func TestRoundTripEmpty(t *testing.T) {
	for _, tc := range encodings {
		if s := tc.e.EncodeToString(nil); s != "" {
			t.Fatalf("%s: encode(empty) = %q", tc.name, s)
		}
		if rs := tc.e.EncodeRunes([]byte{}); len(rs) != 0 {
			t.Fatalf("%s: EncodeRunes(empty) len %d", tc.name, len(rs))
		}
		b := mustDecode(t, tc.e, "")
		if b == nil || len(b) != 0 {
			t.Fatalf("%s: decode(empty) = %#v, want empty non-nil", tc.name, b)
		}
	}
}

func TestRoundTripEverySingleByte(t *testing.T) {
	for _, tc := range encodings {
		for v := 0; v < 256; v++ {
			in := []byte{byte(v)}
			got := mustDecode(t, tc.e, tc.e.EncodeToString(in))
			if !bytes.Equal(got, in) {
				t.Fatalf("%s: byte %#02x: got %x", tc.name, v, got)
			}
		}
	}
}

func TestRoundTripLongWithZeros(t *testing.T) {
	in := randomPayload(1, 12_000)
	for i := 0; i < len(in); i += 97 {
		in[i] = 0
	}
	in = append(in, make([]byte, 500)...)

	for _, tc := range encodings {
		s := tc.e.EncodeToString(in)
		if got := mustDecode(t, tc.e, s); !bytes.Equal(got, in) {
			t.Fatalf("%s: long round trip mismatch", tc.name)
		}
		got, err := tc.e.DecodeRunes(tc.e.EncodeRunes(in))
		if err != nil || !bytes.Equal(got, in) {
			t.Fatalf("%s: rune round trip mismatch: %v", tc.name, err)
		}
	}
}

func TestEncodeIsPure(t *testing.T) {
	in := randomPayload(2, 333)
	for _, tc := range encodings {
		rs := tc.e.EncodeRunes(in)
		if len(rs) != 2*len(in) || len(rs) != tc.e.EncodedLen(len(in)) {
			t.Fatalf("%s: len %d want %d", tc.name, len(rs), 2*len(in))
		}
		for i, r := range rs {
			if !tc.e.Alphabet().Contains(r) {
				t.Fatalf("%s: code point %d (%U) not in alphabet", tc.name, i, r)
			}
		}
		s := tc.e.EncodeToString(in)
		if string(rs) != s {
			t.Fatalf("%s: EncodeRunes and EncodeToString disagree", tc.name)
		}
		if len(s) != tc.e.EncodedByteLen(len(in)) {
			t.Fatalf("%s: byte len %d want %d", tc.name, len(s), tc.e.EncodedByteLen(len(in)))
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	in := []byte("same input, same output")
	a := StdEncoding.EncodeToString(in)
	for i := 0; i < 10; i++ {
		if b := StdEncoding.EncodeToString(in); b != a {
			t.Fatalf("encode changed between calls")
		}
	}
}

func TestEncodeHighNibbleFirst(t *testing.T) {
	rs := StdEncoding.EncodeRunes([]byte{0x41})
	a := VariationSelectors
	if len(rs) != 2 || rs[0] != a.Rune(4) || rs[1] != a.Rune(1) {
		t.Fatalf("encode(0x41) = %U", rs)
	}
	if rs[0] != '\uFE04' || rs[1] != '\uFE01' {
		t.Fatalf("encode(0x41) = %U, want U+FE04 U+FE01", rs)
	}
	if got := mustDecode(t, StdEncoding, string(rs)); !bytes.Equal(got, []byte{0x41}) {
		t.Fatalf("decode = %x", got)
	}
}

func TestHiBang(t *testing.T) {
	s := Encode([]byte("Hi!"))
	if n := len([]rune(s)); n != 6 {
		t.Fatalf("got %d code points want 6", n)
	}
	got, err := Decode(s)
	if err != nil || string(got) != "Hi!" {
		t.Fatalf("Decode = %q, %v", got, err)
	}
}

func TestDecodeIgnoresCarriers(t *testing.T) {
	in := []byte("payload\x00with\xffbytes")
	enc := StdEncoding.EncodeRunes(in)

	// surrounding noise
	s := "X" + string(enc) + "Y"
	if got := mustDecode(t, StdEncoding, s); !bytes.Equal(got, in) {
		t.Fatalf("surrounded: got %q", got)
	}

	// noise spliced between every pair of members, including other
	// invisible code points and a supplement selector
	var sb strings.Builder
	noise := []string{"a", " ", "\u200B", "é", "日本", "\U000E0100", "\n"}
	for i, r := range enc {
		sb.WriteString(noise[i%len(noise)])
		sb.WriteRune(r)
	}
	sb.WriteString("tail")
	if got := mustDecode(t, StdEncoding, sb.String()); !bytes.Equal(got, in) {
		t.Fatalf("spliced: got %q", got)
	}

	if got := mustDecode(t, StdEncoding, "X"+Encode([]byte{0x41})+"Y"); !bytes.Equal(got, []byte{0x41}) {
		t.Fatalf("X..Y: got %x", got)
	}
}

func TestDecodeSkipsInvalidUTF8(t *testing.T) {
	in := []byte{0xde, 0xad}
	src := append([]byte{0xff, 0xfe}, StdEncoding.AppendEncode(nil, in)...)
	src = append(src, 0xc3) // dangling lead byte
	got, err := StdEncoding.AppendDecode(nil, src)
	if err != nil || !bytes.Equal(got, in) {
		t.Fatalf("got %x, %v", got, err)
	}
}

func TestDecodeOddMembersFails(t *testing.T) {
	rs := StdEncoding.EncodeRunes([]byte{1, 2, 3})[:5]
	_, err := StdEncoding.DecodeString(string(rs))
	if !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("want ErrTruncatedPayload, got %v", err)
	}
	var te *TruncatedPayloadError
	if !errors.As(err, &te) || te.Members != 5 {
		t.Fatalf("want Members=5, got %+v", te)
	}
	// dangling member is the fifth, 3 bytes each
	if te.Offset != 12 {
		t.Fatalf("offset = %d want 12", te.Offset)
	}

	if _, err := StdEncoding.DecodeRunes(rs); !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("DecodeRunes: want ErrTruncatedPayload, got %v", err)
	}

	// a single member hidden in text
	if _, err := Decode("hello " + string(VariationSelectors.Rune(9)) + " world"); !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("single member: got %v", err)
	}
}

func TestAppendDecodeFailureLeavesDst(t *testing.T) {
	dst := []byte("keep")
	src := []byte(string(StdEncoding.EncodeRunes([]byte{7, 8})[:3]))
	out, err := StdEncoding.AppendDecode(dst, src)
	if err == nil {
		t.Fatalf("expected error")
	}
	if string(out) != "keep" {
		t.Fatalf("dst changed: %q", out)
	}
}

func TestAppendEncodeAndDecodeKeepPrefix(t *testing.T) {
	out := StdEncoding.AppendEncode([]byte("pre:"), []byte{0xAB})
	if !strings.HasPrefix(string(out), "pre:") {
		t.Fatalf("prefix lost")
	}
	got, err := StdEncoding.AppendDecode([]byte{0x01}, out)
	if err != nil || !bytes.Equal(got, []byte{0x01, 0xAB}) {
		t.Fatalf("got %x, %v", got, err)
	}
}

func TestEncodingsDoNotCrossDecode(t *testing.T) {
	s := SupplementEncoding.EncodeToString([]byte("x"))
	got := mustDecode(t, StdEncoding, s)
	if len(got) != 0 {
		t.Fatalf("std decoded supplement text: %x", got)
	}
}

func TestScan(t *testing.T) {
	s := "ab" + Encode([]byte{1, 2}) + "c"
	got := StdEncoding.Scan(s)
	if got != (Tally{Members: 4, Carriers: 3}) {
		t.Fatalf("Scan = %+v", got)
	}
}

func TestDecodeTallyMatchesScan(t *testing.T) {
	text := "\xffa" + Encode([]byte("tally")) + "\u00e9\xc3 " + string(SupplementEncoding.Alphabet().Rune(3))
	_, got, err := StdEncoding.decodeString(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := StdEncoding.Scan(text); got != want {
		t.Fatalf("tally = %+v, Scan = %+v", got, want)
	}
	if got.Members != 10 || got.Carriers != 6 {
		t.Fatalf("tally = %+v", got)
	}
}

func TestConcurrentUse(t *testing.T) {
	in := randomPayload(3, 1024)
	want := StdEncoding.EncodeToString(in)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				s := StdEncoding.EncodeToString(in)
				if s != want {
					done <- errors.New("encode mismatch")
					return
				}
				b, err := StdEncoding.DecodeString(s)
				if err != nil || !bytes.Equal(b, in) {
					done <- errors.New("decode mismatch")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
