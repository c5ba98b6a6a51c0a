// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{DecodedEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := ghostext.New(ghostext.Options{Hooks: hooks})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/ghostext"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full; Dropped reports how many.
type Hooks struct {
	inner   ghostext.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards closed against sends racing Close
	closed  bool
	dropped atomic.Uint64
}

var _ ghostext.Hooks = (*Hooks)(nil)

func New(inner ghostext.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) Encoded(n int)           { h.try(func() { h.inner.Encoded(n) }) }
func (h *Hooks) Decoded(n, carriers int) { h.try(func() { h.inner.Decoded(n, carriers) }) }
func (h *Hooks) Truncated(members int)   { h.try(func() { h.inner.Truncated(members) }) }
func (h *Hooks) Rejected(n, limit int)   { h.try(func() { h.inner.Rejected(n, limit) }) }
func (h *Hooks) EnvelopeMissing()        { h.try(func() { h.inner.EnvelopeMissing() }) }
