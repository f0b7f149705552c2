package batch

import (
	"errors"
	"fmt"
)

// Status classifies how a run ended.
type Status int

const (
	// StatusCompleted: every work item ran to completion.
	StatusCompleted Status = iota
	// StatusCancelled: the run was cancelled before all items started; items
	// already in flight were allowed to finish.
	StatusCancelled
	// StatusFailed: one or more work items failed; the rest completed (or,
	// under WithAbortOnError, were skipped).
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes the outcome of a run after full drain.
type Result struct {
	Status Status

	// Completed is the number of work items that truly finished; it equals
	// Total only for StatusCompleted.
	Completed int

	// Total is the work item count the run was started with.
	Total int

	// Failures holds one entry per failed work item, in no particular
	// order. Empty unless items failed.
	Failures []*IndexError
}

// Err returns the aggregate of all per-item failures, or nil when none
// occurred.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// IndexError is a work item failure tagged with the item's index.
type IndexError struct {
	Index int
	err   error
}

func newIndexError(index int, err error) *IndexError {
	return &IndexError{Index: index, err: err}
}

func (e *IndexError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.err) }
func (e *IndexError) Unwrap() error { return e.err }

func (e *IndexError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "item %d: %+v", e.Index, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractIndex returns the work item index carried by err, if any.
func ExtractIndex(err error) (int, bool) {
	var ie *IndexError
	if errors.As(err, &ie) {
		return ie.Index, true
	}
	return 0, false
}
