package batch

import (
	"context"

	"github.com/ygrebnov/errorc"
)

// WorkItem is the caller-supplied operation executed once per index in
// [0, total). It is opaque to the engine and responsible for the thread
// safety of whatever it touches; the engine only guarantees it is invoked at
// most once per index and never after cancellation was observed.
type WorkItem func(ctx context.Context, index int) error

// Run executes work for every index in [0, total) with bounded concurrency
// and blocks until full drain: every item has completed, failed, or been
// skipped due to cancellation.
//
// A non-nil error is returned only for invalid input, before any worker
// starts. Work item failures do not produce an error here; they are
// aggregated on the Result (default policy: continue remaining items, report
// all failures after drain; see WithAbortOnError for the alternative).
//
// Cancelling ctx or signalling the configured Gate stops new dispatch;
// in-flight items finish and the run reports StatusCancelled.
func Run(ctx context.Context, total int, work WorkItem, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "total must be >= 0"))
	}
	if work == nil {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "work item callback must be non-nil"))
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency == 0 {
		maxConcurrency = DefaultConcurrency(0)
	}

	gate := cfg.Gate
	if gate == nil {
		gate = NewGate()
	}

	tracker := newTracker(total, newThrottle(&cfg, total, maxConcurrency), cfg.Observer)

	log := cfg.Logger.WithValues("total", total, "maxConcurrency", maxConcurrency)
	log.V(1).Info("starting run")

	result := &Result{Total: total}
	if total == 0 {
		tracker.finish()
		log.V(1).Info("run finished", "status", result.Status.String())
		return result, nil
	}

	d := newDispatcher(total, work, gate, tracker, cfg.AbortOnError, log, cfg.Metrics)
	result.Failures = d.run(ctx, maxConcurrency)
	result.Completed = tracker.Snapshot()

	// terminal notification for runs that ended short of total; no-op when a
	// worker already delivered {total, total}
	tracker.finish()

	switch {
	case gate.IsCancelled() || ctx.Err() != nil:
		result.Status = StatusCancelled
	case len(result.Failures) > 0:
		result.Status = StatusFailed
	default:
		result.Status = StatusCompleted
	}

	log.V(1).Info("run finished",
		"status", result.Status.String(),
		"completed", result.Completed,
		"failed", len(result.Failures))
	return result, nil
}

// newThrottle selects the throttle variant from configuration. Both variants
// guarantee the terminal notification.
func newThrottle(cfg *config, total, maxConcurrency int) throttle {
	if cfg.NotifyEvery > 0 {
		return newTimeThrottle(total, cfg.NotifyEvery)
	}
	interval := cfg.UpdateInterval
	if interval == 0 {
		interval = deriveInterval(total, maxConcurrency, cfg.Responsiveness)
	}
	return newCountThrottle(total, interval)
}
