package ghostext

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedPayload is matched by every *TruncatedPayloadError.
	ErrTruncatedPayload = errors.New("ghostext: truncated payload")
	// ErrNoEnvelope is returned by Open when the text holds no start/end marker pair.
	ErrNoEnvelope = errors.New("ghostext: no envelope found")
	// ErrCoverContainsAlphabet is returned by Hide when the cover text already
	// carries alphabet members, which would corrupt the hidden payload.
	ErrCoverContainsAlphabet = errors.New("ghostext: cover text contains alphabet code points")
	// ErrPayloadTooLarge is matched by every *LimitError.
	ErrPayloadTooLarge = errors.New("ghostext: payload too large")
)

// TruncatedPayloadError reports an odd number of alphabet members.
// The stream cannot represent a whole number of bytes.
type TruncatedPayloadError struct {
	// Members is the number of alphabet code points found.
	Members int
	// Offset is the byte offset of the dangling code point in the input,
	// or -1 when the input was not a byte stream.
	Offset int
}

func (e *TruncatedPayloadError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("ghostext: truncated payload: %d alphabet code points (odd)", e.Members)
	}
	return fmt.Sprintf("ghostext: truncated payload: %d alphabet code points (odd), dangling nibble at offset %d",
		e.Members, e.Offset)
}

func (e *TruncatedPayloadError) Is(target error) bool { return target == ErrTruncatedPayload }

// AlphabetError reports why a candidate alphabet was rejected.
type AlphabetError struct {
	Index  int // rune position, -1 when the whole input is at fault
	Rune   rune
	Reason string
}

func (e *AlphabetError) Error() string {
	if e.Index < 0 {
		return "ghostext: invalid alphabet: " + e.Reason
	}
	return fmt.Sprintf("ghostext: invalid alphabet: %U at position %d: %s", e.Rune, e.Index, e.Reason)
}

// LimitError is returned when an input exceeds Options.MaxDecode.
type LimitError struct {
	Size  int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("ghostext: payload too large: %d > %d", e.Size, e.Limit)
}

func (e *LimitError) Unwrap() error { return ErrPayloadTooLarge }
