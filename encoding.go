package ghostext

import (
	"unicode/utf8"
)

// Encoding maps bytes to pairs of alphabet code points and back.
// It holds no mutable state and is safe for concurrent use.
type Encoding struct {
	alpha *Alphabet
	// UTF-8 form of every alphabet rune, indexed by nibble.
	utf [AlphabetSize][]byte
	// set when all members share one UTF-8 width
	width int
}

var (
	// StdEncoding uses VariationSelectors.
	StdEncoding = NewEncoding(VariationSelectors)
	// SupplementEncoding uses VariationSelectorsSupplement.
	SupplementEncoding = NewEncoding(VariationSelectorsSupplement)
)

// NewEncoding returns an Encoding over a.
func NewEncoding(a *Alphabet) *Encoding {
	e := &Encoding{alpha: a}
	for i, r := range a.enc {
		e.utf[i] = utf8.AppendRune(nil, r)
	}
	e.width = len(e.utf[0])
	for _, u := range e.utf {
		if len(u) != e.width {
			e.width = 0
			break
		}
	}
	return e
}

// Alphabet returns the table e encodes with.
func (e *Encoding) Alphabet() *Alphabet { return e.alpha }

// EncodedLen returns the number of code points produced for n bytes.
func (e *Encoding) EncodedLen(n int) int { return 2 * n }

// EncodedByteLen returns an upper bound of the UTF-8 size produced for n
// bytes. It is exact when every alphabet member has the same UTF-8 width.
func (e *Encoding) EncodedByteLen(n int) int {
	if e.width > 0 {
		return 2 * n * e.width
	}
	return 2 * n * utf8.UTFMax
}

// EncodeRunes encodes src as code points, high nibble first.
func (e *Encoding) EncodeRunes(src []byte) []rune {
	out := make([]rune, 0, e.EncodedLen(len(src)))
	for _, b := range src {
		out = append(out, e.alpha.enc[b>>4], e.alpha.enc[b&0xF])
	}
	return out
}

// AppendEncode appends the UTF-8 encoding of src to dst.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	if n := len(dst) + e.EncodedByteLen(len(src)); cap(dst) < n {
		nb := make([]byte, len(dst), n)
		copy(nb, dst)
		dst = nb
	}
	for _, b := range src {
		dst = append(dst, e.utf[b>>4]...)
		dst = append(dst, e.utf[b&0xF]...)
	}
	return dst
}

// EncodeToString returns the invisible encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	return string(e.AppendEncode(nil, src))
}

// AppendDecode decodes the UTF-8 text src and appends the payload to dst.
// Code points outside the alphabet and invalid UTF-8 are skipped.
// On a *TruncatedPayloadError dst is returned at its original length.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	dst, _, err := e.appendDecode(dst, src)
	return dst, err
}

// appendDecode is AppendDecode that also counts src by role. Each invalid
// UTF-8 byte counts as one carrier, as in Scan.
func (e *Encoding) appendDecode(dst, src []byte) ([]byte, Tally, error) {
	start := len(dst)
	var (
		t       Tally
		hi      byte
		pending bool
		offset  int
	)
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if n, ok := e.alpha.Nibble(r); ok {
			t.Members++
			if pending {
				dst = append(dst, hi<<4|n)
			} else {
				hi, offset = n, i
			}
			pending = !pending
		} else {
			t.Carriers++
		}
		i += size
	}
	if pending {
		return dst[:start], t, &TruncatedPayloadError{Members: t.Members, Offset: offset}
	}
	return dst, t, nil
}

// DecodeString decodes s. Empty or carrier-only input yields an empty, non-nil slice.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	out, _, err := e.decodeString(s)
	return out, err
}

func (e *Encoding) decodeString(s string) ([]byte, Tally, error) {
	out, t, err := e.appendDecode(make([]byte, 0, len(s)/(2*e.minWidth())), []byte(s))
	if err != nil {
		return nil, t, err
	}
	return out, t, nil
}

// DecodeRunes decodes a code point sequence.
func (e *Encoding) DecodeRunes(rs []rune) ([]byte, error) {
	out := make([]byte, 0, len(rs)/2)
	var (
		hi      byte
		pending bool
		members int
	)
	for _, r := range rs {
		n, ok := e.alpha.Nibble(r)
		if !ok {
			continue
		}
		members++
		if pending {
			out = append(out, hi<<4|n)
		} else {
			hi = n
		}
		pending = !pending
	}
	if pending {
		return nil, &TruncatedPayloadError{Members: members, Offset: -1}
	}
	return out, nil
}

// Tally counts the code points of a text by role.
type Tally struct {
	Members  int
	Carriers int
}

// Scan classifies every code point of s without decoding.
func (e *Encoding) Scan(s string) Tally {
	var t Tally
	for _, r := range s {
		if e.alpha.Contains(r) {
			t.Members++
		} else {
			t.Carriers++
		}
	}
	return t
}

func (e *Encoding) minWidth() int {
	if e.width > 0 {
		return e.width
	}
	return 1
}

// Encode returns the invisible encoding of payload using StdEncoding.
func Encode(payload []byte) string { return StdEncoding.EncodeToString(payload) }

// Decode recovers a payload from text using StdEncoding.
func Decode(text string) ([]byte, error) { return StdEncoding.DecodeString(text) }
