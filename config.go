package batch

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/batch/metrics"
)

// config holds run configuration. It is immutable once Run starts.
type config struct {
	// MaxConcurrency is the upper bound on simultaneously executing work
	// items. Zero (default) derives the bound from the host's logical CPU
	// count; see DefaultConcurrency.
	MaxConcurrency int

	// UpdateInterval is the number of completions between notifications.
	// Zero (default) derives the interval from total, MaxConcurrency, and
	// Responsiveness.
	UpdateInterval int

	// Responsiveness tunes the derived notification interval:
	// max(1, total/(MaxConcurrency*Responsiveness)). Higher values mean
	// smoother progress and more observer calls.
	// Default: 4.0.
	Responsiveness float64

	// NotifyEvery selects the time-based throttle: at most one notification
	// per interval, plus the terminal one. Mutually exclusive with
	// UpdateInterval. Zero (default) keeps the count-based throttle.
	NotifyEvery time.Duration

	// AbortOnError stops dispatching new work items after the first failure.
	// Items already in flight still run to completion. The default policy
	// continues the remaining items and aggregates all failures.
	AbortOnError bool

	// Observer receives throttled progress notifications. Nil disables
	// notifications entirely.
	Observer Observer

	// Gate is the cancellation flag shared with the caller. Nil means the
	// run can only be cancelled through the context.
	Gate *Gate

	// Logger receives run lifecycle and failure records. Default: discard.
	Logger logr.Logger

	// Metrics provides the instruments the engine records into.
	// Default: no-op.
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		MaxConcurrency: 0, // derived from hardware
		UpdateInterval: 0, // derived from total and concurrency
		Responsiveness: defaultResponsiveness,
		NotifyEvery:    0, // count-based throttle
		AbortOnError:   false,
		Logger:         logr.Discard(),
		Metrics:        metrics.NewNoopProvider(),
	}
}

const defaultResponsiveness = 4.0

// validateConfig checks cross-option invariants. Per-option input checks
// live in the options themselves.
func validateConfig(cfg *config) error {
	if cfg.UpdateInterval > 0 && cfg.NotifyEvery > 0 {
		return errorc.With(ErrInvalidConfig,
			errorc.String("", "WithUpdateInterval and WithTimeThrottle are mutually exclusive"))
	}
	return nil
}

// Option configures a run. Invalid inputs are reported as errors from Run
// before any worker starts; they are never silently clamped.
type Option func(*config) error

// WithMaxConcurrency bounds the number of simultaneously executing work
// items (must be > 0).
func WithMaxConcurrency(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMaxConcurrency requires n > 0"))
		}
		cfg.MaxConcurrency = n
		return nil
	}
}

// WithUpdateInterval fixes the number of completions between notifications
// (must be > 0), overriding the derived interval.
func WithUpdateInterval(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithUpdateInterval requires n > 0"))
		}
		cfg.UpdateInterval = n
		return nil
	}
}

// WithResponsiveness tunes the derived notification interval (must be > 0,
// default 4.0).
func WithResponsiveness(f float64) Option {
	return func(cfg *config) error {
		if f <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithResponsiveness requires f > 0"))
		}
		cfg.Responsiveness = f
		return nil
	}
}

// WithTimeThrottle selects the time-based throttle: at most one notification
// per d (must be > 0), plus the guaranteed terminal one.
func WithTimeThrottle(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithTimeThrottle requires d > 0"))
		}
		cfg.NotifyEvery = d
		return nil
	}
}

// WithAbortOnError stops dispatching new work items after the first failure.
func WithAbortOnError() Option {
	return func(cfg *config) error { cfg.AbortOnError = true; return nil }
}

// WithObserver registers the progress notification callback (must be
// non-nil).
func WithObserver(fn Observer) Option {
	return func(cfg *config) error {
		if fn == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithObserver requires a non-nil callback"))
		}
		cfg.Observer = fn
		return nil
	}
}

// WithGate shares the cancellation gate with the caller (must be non-nil),
// typically so a UI handler can call Signal on it.
func WithGate(g *Gate) Option {
	return func(cfg *config) error {
		if g == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithGate requires a non-nil gate"))
		}
		cfg.Gate = g
		return nil
	}
}

// WithLogger directs run lifecycle and failure records to l.
func WithLogger(l logr.Logger) Option {
	return func(cfg *config) error { cfg.Logger = l; return nil }
}

// WithMetrics records run measurements into the provided provider (must be
// non-nil).
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
