package batch

import "context"

// ForEach applies fn to each item of the slice concurrently using Run.
// Options, cancellation, throttling, and failure policy behave exactly as
// for Run; the returned Result indexes failures by slice position.
func ForEach[T any](ctx context.Context, items []T, fn func(context.Context, T) error, opts ...Option) (*Result, error) {
	return Run(ctx, len(items), func(ctx context.Context, index int) error {
		return fn(ctx, items[index])
	}, opts...)
}
