package ghostext

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Placement selects where Hide puts the invisible stream relative to the cover text.
type Placement int

const (
	// Suffix appends the stream after the cover text.
	Suffix = Placement(iota)
	// Prefix puts the stream before the cover text.
	Prefix
	// Interleave spreads the stream through the cover text, one payload
	// byte (two code points) after each cover rune. Whatever does not fit is
	// appended at the end.
	Interleave
)

func (p Placement) String() string {
	switch p {
	case Suffix:
		return "suffix"
	case Prefix:
		return "prefix"
	case Interleave:
		return "interleave"
	default:
		return fmt.Sprintf("??? (%d)", int(p))
	}
}

// ParsePlacement accepts the names returned by Placement.String.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suffix", "":
		return Suffix, nil
	case "prefix":
		return Prefix, nil
	case "interleave":
		return Interleave, nil
	default:
		return 0, fmt.Errorf("ghostext: unknown placement %q", s)
	}
}

// Hide embeds the encoding of payload in cover. The result decodes back to
// payload because every cover rune is a carrier. Cover text that already
// contains alphabet members is rejected with ErrCoverContainsAlphabet.
func (e *Encoding) Hide(cover string, payload []byte, p Placement) (string, error) {
	if t := e.Scan(cover); t.Members > 0 {
		return "", fmt.Errorf("%w (%d found)", ErrCoverContainsAlphabet, t.Members)
	}

	out := make([]byte, 0, len(cover)+e.EncodedByteLen(len(payload)))
	switch p {
	case Suffix:
		out = append(out, cover...)
		out = e.AppendEncode(out, payload)
	case Prefix:
		out = e.AppendEncode(out, payload)
		out = append(out, cover...)
	case Interleave:
		i := 0
		for len(cover) > 0 {
			_, size := utf8.DecodeRuneInString(cover)
			out = append(out, cover[:size]...)
			cover = cover[size:]
			if i < len(payload) {
				out = e.AppendEncode(out, payload[i:i+1])
				i++
			}
		}
		out = e.AppendEncode(out, payload[i:])
	default:
		return "", fmt.Errorf("ghostext: unknown placement %s", p)
	}
	return string(out), nil
}
