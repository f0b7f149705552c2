package batch

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

const defaultHardwareFraction = 0.5

// DefaultConcurrency derives a worker count from the host's logical CPU
// count scaled by fraction. Non-positive fractions fall back to 0.5, i.e.
// half of the logical execution units. The result is never below 1.
//
// This is the value Run uses when no WithMaxConcurrency option is given.
func DefaultConcurrency(fraction float64) int {
	if fraction <= 0 {
		fraction = defaultHardwareFraction
	}
	logical, err := cpu.Counts(true)
	if err != nil || logical < 1 {
		logical = runtime.NumCPU()
	}
	n := int(float64(logical) * fraction)
	if n < 1 {
		n = 1
	}
	return n
}
