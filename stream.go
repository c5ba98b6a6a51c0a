package ghostext

import (
	"io"
	"unicode/utf8"
)

type encoder struct {
	enc *Encoding
	w   io.Writer
	buf []byte
}

// NewEncoder returns a writer that writes the invisible encoding of
// everything written to it to w. Each byte is encoded on its own, so no
// Close or Flush is needed.
func NewEncoder(enc *Encoding, w io.Writer) io.Writer {
	return &encoder{enc: enc, w: w}
}

func (e *encoder) Write(p []byte) (int, error) {
	e.buf = e.enc.AppendEncode(e.buf[:0], p)
	m, err := e.w.Write(e.buf)
	if err == nil && m < len(e.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		if e.enc.width > 0 {
			return m / (2 * e.enc.width), err
		}
		return 0, err
	}
	return len(p), nil
}

const decodeChunk = 4096

type decoder struct {
	enc *Encoding
	r   io.Reader

	in  []byte // raw text; a split UTF-8 sequence may remain at the front
	nin int
	out []byte

	hi       byte
	pending  bool
	members  int
	consumed int
	hiOffset int

	err error
}

// NewDecoder returns a reader that decodes the invisible text read from r.
// Carrier code points are skipped. When r ends after an odd number of
// alphabet members the final Read returns a *TruncatedPayloadError; bytes
// handed out by earlier reads are not retracted.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	return &decoder{enc: enc, r: r, in: make([]byte, decodeChunk)}
}

func (d *decoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 && d.err == nil {
		n, err := d.r.Read(d.in[d.nin:])
		d.nin += n
		d.scan(err != nil)
		if err != nil {
			if err == io.EOF && d.pending {
				err = &TruncatedPayloadError{Members: d.members, Offset: d.hiOffset}
			}
			d.err = err
		}
	}
	if len(d.out) == 0 {
		return 0, d.err
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

// scan decodes every complete rune in d.in. A trailing partial rune is kept
// for the next read unless final is set.
func (d *decoder) scan(final bool) {
	buf := d.in[:d.nin]
	i := 0
	for i < len(buf) {
		if !final && !utf8.FullRune(buf[i:]) {
			break
		}
		r, size := utf8.DecodeRune(buf[i:])
		if n, ok := d.enc.alpha.Nibble(r); ok {
			d.members++
			if d.pending {
				d.out = append(d.out, d.hi<<4|n)
			} else {
				d.hi, d.hiOffset = n, d.consumed+i
			}
			d.pending = !d.pending
		}
		i += size
	}
	d.consumed += i
	d.nin = copy(d.in, buf[i:])
}
