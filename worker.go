package batch

import (
	"context"
	"fmt"
	"time"
)

// worker is one goroutine of the dispatch pool. Failures are accumulated
// locally and merged by the dispatcher after drain, so workers never contend
// on a shared failure list.
type worker struct {
	d        *dispatcher
	failures []*IndexError
}

// run pulls indices from the shared cursor until the range is exhausted, the
// gate is signalled, or ctx is done. The gate is consulted before every item,
// never mid-item: an item in progress always finishes.
func (w *worker) run(ctx context.Context) error {
	for {
		if ctx.Err() != nil || w.d.gate.IsCancelled() {
			return nil
		}
		index := int(w.d.cursor.Add(1)) - 1
		if index >= w.d.total {
			return nil
		}

		if err := w.invoke(ctx, index); err != nil {
			w.failures = append(w.failures, newIndexError(index, err))
			w.d.ins.failed.Add(1)
			w.d.log.V(1).Info("work item failed", "index", index, "error", err.Error())
			if w.d.abort {
				// returning the error cancels the group context, stopping
				// sibling workers from starting new items
				return err
			}
			continue
		}
		w.d.tracker.Increment()
		w.d.ins.completed.Add(1)
	}
}

// invoke executes a single work item, converting a panic into an error so
// one misbehaving item never crashes sibling workers.
func (w *worker) invoke(ctx context.Context, index int) (err error) {
	w.d.ins.inflight.Add(1)
	start := time.Now()
	defer func() {
		w.d.ins.inflight.Add(-1)
		w.d.ins.duration.Record(time.Since(start).Seconds())
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrItemPanicked, r)
		}
	}()
	return w.d.work(ctx, index)
}
