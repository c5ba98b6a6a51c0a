package ghostext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/unkn0wn-root/ghostext/internal/wire"
)

// Default envelope markers: U+2062 INVISIBLE TIMES and U+2063 INVISIBLE SEPARATOR.
const (
	DefaultStart = '\u2062'
	DefaultEnd   = '\u2063'
)

// Envelope delimits a framed payload inside arbitrary text so it can be
// found again among other invisible runs:
//
//	Start | encode(magic | ver | kind | len | payload) | End
//
// The frame lets Open reject truncated or foreign runs between markers.
type Envelope struct {
	enc        *Encoding
	start, end rune
}

// DefaultEnvelope seals with StdEncoding and the default markers.
var DefaultEnvelope = mustEnvelope(StdEncoding, DefaultStart, DefaultEnd)

// NewEnvelope validates the markers against enc. Markers must be distinct,
// invisible and outside the alphabet.
func NewEnvelope(enc *Encoding, start, end rune) (*Envelope, error) {
	if enc == nil {
		return nil, fmt.Errorf("ghostext: envelope needs an encoding")
	}
	if start == end {
		return nil, fmt.Errorf("ghostext: envelope markers must differ, both are %U", start)
	}
	for _, r := range [...]rune{start, end} {
		if !Invisible(r) {
			return nil, fmt.Errorf("ghostext: envelope marker %U is not a zero-width code point", r)
		}
		if enc.alpha.Contains(r) {
			return nil, fmt.Errorf("ghostext: envelope marker %U is an alphabet member", r)
		}
	}
	return &Envelope{enc: enc, start: start, end: end}, nil
}

func mustEnvelope(enc *Encoding, start, end rune) *Envelope {
	e, err := NewEnvelope(enc, start, end)
	if err != nil {
		panic(err)
	}
	return e
}

// Encoding returns the encoding used between the markers.
func (e *Envelope) Encoding() *Encoding { return e.enc }

// Markers returns the start and end markers.
func (e *Envelope) Markers() (start, end rune) { return e.start, e.end }

// Seal returns payload framed and encoded between the markers.
func (e *Envelope) Seal(payload []byte) string {
	frame := wire.EncodeFrame(wire.KindRaw, payload)
	out := make([]byte, 0, 2*utf8.UTFMax+e.enc.EncodedByteLen(len(frame)))
	out = utf8.AppendRune(out, e.start)
	out = e.enc.AppendEncode(out, frame)
	out = utf8.AppendRune(out, e.end)
	return string(out)
}

// Open returns the payload of the first well-formed envelope in text.
// Carriers inside the envelope are ignored. It returns ErrNoEnvelope when
// text has no marker pair, or the first candidate's error when no
// candidate is well-formed.
//
// A start marker pairs with the nearest following end marker, not the last
// one in the text, so two envelopes on one line are opened separately.
func (e *Envelope) Open(text string) ([]byte, error) {
	var first error
	for _, inner := range e.candidates(text) {
		p, err := e.open(inner)
		if err == nil {
			return p, nil
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}
	return nil, ErrNoEnvelope
}

// OpenAll returns the payloads of every well-formed envelope, in order.
// Malformed candidates are skipped; ErrNoEnvelope is returned when none is valid.
func (e *Envelope) OpenAll(text string) ([][]byte, error) {
	var out [][]byte
	for _, inner := range e.candidates(text) {
		if p, err := e.open(inner); err == nil {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoEnvelope
	}
	return out, nil
}

func (e *Envelope) open(inner string) ([]byte, error) {
	frame, err := e.enc.DecodeString(inner)
	if err != nil {
		return nil, err
	}
	_, payload, err := wire.DecodeFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("ghostext: open envelope: %w", err)
	}
	return payload, nil
}

// candidates returns the text between each start marker and the nearest
// following end marker. A start seen before the end restarts the candidate.
func (e *Envelope) candidates(text string) []string {
	var out []string
	for {
		i := strings.IndexRune(text, e.start)
		if i < 0 {
			return out
		}
		text = text[i+utf8.RuneLen(e.start):]

		j := strings.IndexRune(text, e.end)
		if j < 0 {
			return out
		}
		inner := text[:j]
		if k := strings.LastIndex(inner, string(e.start)); k >= 0 {
			inner = inner[k+utf8.RuneLen(e.start):]
		}
		out = append(out, inner)
		text = text[j+utf8.RuneLen(e.end):]
	}
}
