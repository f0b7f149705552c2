// Package metrics defines the minimal instrumentation surface the batch
// engine records into, decoupled from any particular metrics backend.
package metrics

// Provider constructs the instruments the engine records into.
// Implementations must be safe for concurrent use. Instruments requested
// twice under the same name must refer to the same underlying state.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts (items completed, items failed).
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move in both directions (in-flight items).
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements (item durations
// in seconds).
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries advisory instrument metadata. Implementations may
// ignore it entirely.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}
