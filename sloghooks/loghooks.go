package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/ghostext"
)

type Options struct {
	// Sampling to avoid floods on busy decoders; 0/1 = log all.
	EncodedEvery uint64
	DecodedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	encodedCtr atomic.Uint64
	decodedCtr atomic.Uint64
}

var _ ghostext.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Encoded(payloadLen int) {
	if h.l == nil || !sample(h.opts.EncodedEvery, &h.encodedCtr) {
		return
	}
	h.l.Debug("ghostext.encoded",
		"payload_bytes", payloadLen)
}

func (h *Hooks) Decoded(payloadLen, carriers int) {
	if h.l == nil || !sample(h.opts.DecodedEvery, &h.decodedCtr) {
		return
	}
	h.l.Debug("ghostext.decoded",
		"payload_bytes", payloadLen,
		"carriers", carriers)
}

func (h *Hooks) Truncated(members int) {
	if h.l == nil {
		return
	}
	h.l.Warn("ghostext.truncated",
		"members", members)
}

func (h *Hooks) Rejected(inputLen, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("ghostext.rejected",
		"text_bytes", inputLen,
		"limit", limit)
}

func (h *Hooks) EnvelopeMissing() {
	if h.l == nil {
		return
	}
	h.l.Info("ghostext.envelope_missing")
}
