package batch

import (
	"sync"
	"sync/atomic"
)

// Gate is a one-shot cancellation flag shared between the caller and all
// workers of a run. The zero value is not usable; construct with NewGate.
//
// State machine: active -> cancelled (terminal). There is no way back.
type Gate struct {
	cancelled atomic.Bool
	once      sync.Once
	done      chan struct{}
}

// NewGate returns a Gate in the active state.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Signal transitions the gate to cancelled. It is idempotent and safe to
// call from any goroutine at any time, including concurrently with itself.
func (g *Gate) Signal() {
	g.once.Do(func() {
		g.cancelled.Store(true)
		close(g.done)
	})
}

// IsCancelled reports whether Signal has been called. It never blocks.
func (g *Gate) IsCancelled() bool {
	return g.cancelled.Load()
}

// Done returns a channel closed on the first Signal call. It allows callers
// to select on cancellation instead of polling IsCancelled.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
