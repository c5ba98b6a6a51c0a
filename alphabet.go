package ghostext

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// AlphabetSize is the number of code points in an alphabet, one per nibble value.
const AlphabetSize = 16

// Alphabet is an ordered table of 16 distinct invisible code points.
// Position i encodes the 4-bit value i. An Alphabet is immutable once built.
type Alphabet struct {
	enc [AlphabetSize]rune
	dec map[rune]byte
	// lo is set when the table is a contiguous run lo..lo+15 in order,
	// which lets Nibble skip the map lookup.
	lo rune
}

// Built-in alphabets.
var (
	// VariationSelectors is VS1..VS16 (U+FE00..U+FE0F). Default.
	VariationSelectors = MustAlphabet(runeRange(0xFE00))
	// VariationSelectorsSupplement is VS17..VS32 (U+E0100..U+E010F).
	VariationSelectorsSupplement = MustAlphabet(runeRange(0xE0100))
)

func runeRange(lo rune) string {
	rs := make([]rune, AlphabetSize)
	for i := range rs {
		rs[i] = lo + rune(i)
	}
	return string(rs)
}

// NewAlphabet builds an alphabet from exactly 16 distinct invisible runes.
func NewAlphabet(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		return nil, &AlphabetError{Index: -1, Reason: "not valid UTF-8"}
	}
	if n := utf8.RuneCountInString(s); n != AlphabetSize {
		return nil, &AlphabetError{Index: -1, Reason: "want 16 code points, got " + strconv.Itoa(n)}
	}

	a := &Alphabet{dec: make(map[rune]byte, AlphabetSize)}
	i := 0
	for _, r := range s {
		if !Invisible(r) {
			return nil, &AlphabetError{Index: i, Rune: r, Reason: "not a zero-width code point"}
		}
		if _, dup := a.dec[r]; dup {
			return nil, &AlphabetError{Index: i, Rune: r, Reason: "duplicate code point"}
		}
		a.enc[i] = r
		a.dec[r] = byte(i)
		i++
	}

	a.lo = a.enc[0]
	for i, r := range a.enc {
		if r != a.enc[0]+rune(i) {
			a.lo = 0
			break
		}
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Meant for package-level variables and tests.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Invisible reports whether r renders with zero width and no glyph in
// conforming text renderers. Format characters that draw a sign
// (prepended concatenation marks), the soft hyphen and the Hangul fillers
// are excluded even though Unicode lists them as ignorable.
func Invisible(r rune) bool {
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return false
	}
	switch r {
	case 0x00AD, 0x115F, 0x1160, 0x3164, 0xFFA0:
		return false
	}
	if unicode.Is(unicode.Prepended_Concatenation_Mark, r) {
		return false
	}
	return unicode.Is(unicode.Variation_Selector, r) ||
		unicode.Is(unicode.Other_Default_Ignorable_Code_Point, r) ||
		unicode.Is(unicode.Cf, r)
}

// Rune returns the code point for nibble n. Only the low 4 bits of n are used.
func (a *Alphabet) Rune(n byte) rune { return a.enc[n&0xF] }

// Nibble returns the value carried by r and whether r is a member.
func (a *Alphabet) Nibble(r rune) (byte, bool) {
	if a.lo != 0 {
		if r >= a.lo && r < a.lo+AlphabetSize {
			return byte(r - a.lo), true
		}
		return 0, false
	}
	n, ok := a.dec[r]
	return n, ok
}

// Contains reports whether r is one of the 16 members.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Nibble(r)
	return ok
}

// Runes returns a copy of the table.
func (a *Alphabet) Runes() [AlphabetSize]rune { return a.enc }

// String returns the 16 code points in nibble order.
func (a *Alphabet) String() string { return string(a.enc[:]) }
