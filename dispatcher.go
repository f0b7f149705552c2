package batch

import (
	"context"
	"sync/atomic"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/ygrebnov/batch/metrics"
)

// dispatcher drives a fixed set of workers over the index range [0, total).
// Workers claim indices through a shared atomic cursor, so every index is
// dispatched at most once regardless of scheduling. run returns only after
// full drain: no work item is left running.
type dispatcher struct {
	total   int
	work    WorkItem
	gate    *Gate
	tracker *Tracker
	abort   bool
	log     logr.Logger
	ins     instruments

	// cursor is the next index to claim; the first Add returns 1 for index 0.
	cursor atomic.Int64
}

// instruments bundles the engine's recorded measurements.
type instruments struct {
	completed metrics.Counter
	failed    metrics.Counter
	inflight  metrics.UpDownCounter
	duration  metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		completed: p.Counter("batch.items.completed", metrics.WithUnit("1")),
		failed:    p.Counter("batch.items.failed", metrics.WithUnit("1")),
		inflight:  p.UpDownCounter("batch.items.inflight", metrics.WithUnit("1")),
		duration: p.Histogram("batch.item.duration",
			metrics.WithUnit("seconds"), metrics.WithDescription("work item execution time")),
	}
}

func newDispatcher(
	total int,
	work WorkItem,
	gate *Gate,
	tracker *Tracker,
	abort bool,
	log logr.Logger,
	provider metrics.Provider,
) *dispatcher {
	return &dispatcher{
		total:   total,
		work:    work,
		gate:    gate,
		tracker: tracker,
		abort:   abort,
		log:     log,
		ins:     newInstruments(provider),
	}
}

// run executes the range with at most maxConcurrency items in flight and
// returns the merged per-item failures after every worker has exited.
func (d *dispatcher) run(ctx context.Context, maxConcurrency int) []*IndexError {
	// more workers than items would only idle; spawning fewer changes no
	// observable behavior
	workers := maxConcurrency
	if workers > d.total {
		workers = d.total
	}

	g, gctx := errgroup.WithContext(ctx)
	ws := make([]*worker, workers)
	for i := range ws {
		w := &worker{d: d}
		ws[i] = w
		g.Go(func() error { return w.run(gctx) })
	}
	// the abort-on-error failure is already recorded on its worker; Wait's
	// error adds nothing
	_ = g.Wait()

	var failures []*IndexError
	for _, w := range ws {
		failures = append(failures, w.failures...)
	}
	return failures
}
