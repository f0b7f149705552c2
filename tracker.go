package batch

import (
	"sync"
	"sync/atomic"
)

// Tracker owns the shared completion counter of a run. All mutation goes
// through Increment; no other component touches the backing storage.
//
// Notifications are serialized under a small mutex so that the observer sees
// strictly increasing values even when workers race: a stale value that lost
// the race is coalesced into the newer one and dropped.
type Tracker struct {
	completed atomic.Int64
	total     int
	throttle  throttle
	observer  Observer

	mu       sync.Mutex
	lastSent int
	finished bool
}

func newTracker(total int, th throttle, obs Observer) *Tracker {
	return &Tracker{total: total, throttle: th, observer: obs}
}

// Increment atomically adds one completed item and returns the new count.
// Safe under arbitrary concurrent invocation; increments are never lost.
// When the throttle approves the new value, the observer is notified.
func (t *Tracker) Increment() int {
	n := int(t.completed.Add(1))
	if t.observer != nil && t.throttle.shouldNotify(n) {
		t.emit(n)
	}
	return n
}

// Snapshot returns the current completion count without blocking writers.
// It may be stale relative to concurrent increments but never overshoots.
func (t *Tracker) Snapshot() int {
	return int(t.completed.Load())
}

// Total returns the run's work item count.
func (t *Tracker) Total() int {
	return t.total
}

func (t *Tracker) emit(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished || n <= t.lastSent {
		return
	}
	if n == t.total {
		t.finished = true
	}
	t.lastSent = n
	t.observer(NotificationEvent{Current: n, Total: t.total})
}

// finish delivers the terminal notification for runs that end short of total
// (cancelled, or some items failed). Exactly one terminal event is emitted
// per run: if a worker already delivered {total, total}, finish is a no-op.
func (t *Tracker) finish() {
	if t.observer == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	t.finished = true
	n := t.Snapshot()
	if n < t.lastSent {
		n = t.lastSent
	}
	t.lastSent = n
	t.observer(NotificationEvent{Current: n, Total: t.total})
}
