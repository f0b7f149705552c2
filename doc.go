// Package batch executes a large number of independent work items
// concurrently over a bounded worker pool, tracks completion progress,
// and reports that progress to an observer at a throttled rate.
//
// Entry points
//   - Run(ctx, total, work, opts...): execute work items for every index in
//     [0, total) and block until all of them have completed, failed, or been
//     skipped due to cancellation.
//   - ForEach(ctx, items, fn, opts...): slice convenience wrapper over Run.
//
// Defaults
// Unless overridden, the following defaults apply to a run:
//   - MaxConcurrency: derived from the host's logical CPU count (half of it,
//     never below 1)
//   - Notification throttle: count-based, interval derived as
//     max(1, total/(maxConcurrency*responsiveness)) with responsiveness 4.0
//   - Failure policy: continue remaining items, aggregate failures, report
//     them after drain via Result
//   - Observer, metrics, logging: disabled
//
// Progress notifications
// The observer receives NotificationEvent values with monotonically
// non-decreasing Current. Intermediate values may be skipped by the throttle;
// exactly one terminal event is always delivered: {total, total} on full
// success, or the final partial count when the run is cancelled or some items
// failed. The observer may be invoked from any worker goroutine and must be
// fast; use ChannelObserver (or dispatch to your own event loop) when the
// consumer is slow, e.g. a UI.
//
// Cancellation
// Cancellation is cooperative: signalling the Gate (or cancelling the parent
// context) prevents new work items from starting but does not interrupt items
// already in progress. Run returns StatusCancelled in that case, after every
// in-flight item has finished.
package batch
