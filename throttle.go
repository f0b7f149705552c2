package batch

import (
	"sync/atomic"
	"time"
)

// throttle decides whether a new progress value should be forwarded to the
// observer. Implementations must be safe for concurrent use; they may
// suppress intermediate values but never the terminal one (current == total).
type throttle interface {
	shouldNotify(current int) bool
}

// countThrottle forwards every interval-th completion plus the terminal one.
// It is a pure function of (current, total, interval) with no mutable state.
type countThrottle struct {
	interval int
	total    int
}

func newCountThrottle(total, interval int) countThrottle {
	if interval < 1 {
		interval = 1
	}
	return countThrottle{interval: interval, total: total}
}

func (t countThrottle) shouldNotify(current int) bool {
	return current == t.total || current%t.interval == 0
}

// deriveInterval computes the completions-per-notification interval as
// max(1, total/(maxConcurrency*responsiveness)). Larger responsiveness means
// smoother progress at the cost of more observer calls.
func deriveInterval(total, maxConcurrency int, responsiveness float64) int {
	interval := int(float64(total) / (float64(maxConcurrency) * responsiveness))
	if interval < 1 {
		interval = 1
	}
	return interval
}

// timeThrottle forwards at most one notification per wall-clock interval,
// plus unconditionally the terminal one. The last emission time is advanced
// with a CAS so concurrent qualifying completions coalesce into one pass.
type timeThrottle struct {
	interval time.Duration
	total    int
	last     atomic.Int64 // unix nanoseconds of the last forwarded sample
}

func newTimeThrottle(total int, interval time.Duration) *timeThrottle {
	return &timeThrottle{interval: interval, total: total}
}

func (t *timeThrottle) shouldNotify(current int) bool {
	if current == t.total {
		return true
	}
	now := time.Now().UnixNano()
	last := t.last.Load()
	if now-last < int64(t.interval) {
		return false
	}
	return t.last.CompareAndSwap(last, now)
}
