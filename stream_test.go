package ghostext

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestEncoderMatchesEncodeToString(t *testing.T) {
	in := randomPayload(4, 5000)
	var buf bytes.Buffer
	w := NewEncoder(StdEncoding, &buf)
	for i := 0; i < len(in); i += 333 {
		end := min(i+333, len(in))
		n, err := w.Write(in[i:end])
		if err != nil || n != end-i {
			t.Fatalf("Write = %d, %v", n, err)
		}
	}
	if buf.String() != StdEncoding.EncodeToString(in) {
		t.Fatalf("streamed encoding differs")
	}
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if len(p) > f.after {
		return f.after, errors.New("disk full")
	}
	f.after -= len(p)
	return len(p), nil
}

func TestEncoderReportsConsumedBytesOnError(t *testing.T) {
	// 2 payload bytes fit in 12 output bytes
	w := NewEncoder(StdEncoding, &failWriter{after: 12})
	n, err := w.Write([]byte("abcd"))
	if err == nil || n != 2 {
		t.Fatalf("Write = %d, %v; want 2 and an error", n, err)
	}
}

func TestDecoderReadsAcrossSplitRunes(t *testing.T) {
	in := randomPayload(5, 3000)
	text := "head " + StdEncoding.EncodeToString(in) + " tail"

	readers := map[string]func(io.Reader) io.Reader{
		"one-byte": iotest.OneByteReader,
		"half":     iotest.HalfReader,
		"data-err": iotest.DataErrReader,
		"plain":    func(r io.Reader) io.Reader { return r },
	}
	for name, wrap := range readers {
		t.Run(name, func(t *testing.T) {
			got, err := io.ReadAll(NewDecoder(StdEncoding, wrap(strings.NewReader(text))))
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if !bytes.Equal(got, in) {
				t.Fatalf("stream decode mismatch")
			}
		})
	}
}

func TestDecoderSmallReads(t *testing.T) {
	in := []byte("small reads")
	d := NewDecoder(StdEncoding, strings.NewReader(Encode(in)))
	var out []byte
	p := make([]byte, 3)
	for {
		n, err := d.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("got %q", out)
	}
}

func TestDecoderTruncatedAtEOF(t *testing.T) {
	rs := StdEncoding.EncodeRunes([]byte("xyz"))
	text := "a" + string(rs[:5]) + "b"
	got, err := io.ReadAll(NewDecoder(StdEncoding, iotest.OneByteReader(strings.NewReader(text))))
	if !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("want ErrTruncatedPayload, got %v", err)
	}
	var te *TruncatedPayloadError
	if !errors.As(err, &te) || te.Members != 5 || te.Offset != 1+4*3 {
		t.Fatalf("unexpected error detail: %+v", te)
	}
	// whole bytes before the dangling nibble were already handed out
	if string(got) != "xy" {
		t.Fatalf("got %q", got)
	}
}

func TestDecoderPassesReaderErrors(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader(Encode([]byte("ok"))), iotest.ErrReader(boom))
	got, err := io.ReadAll(NewDecoder(StdEncoding, r))
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if string(got) != "ok" {
		t.Fatalf("got %q", got)
	}
}

func TestDecoderEmpty(t *testing.T) {
	got, err := io.ReadAll(NewDecoder(StdEncoding, strings.NewReader("")))
	if err != nil || len(got) != 0 {
		t.Fatalf("got %q, %v", got, err)
	}
}
