package batch

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCompleted, "completed"},
		{StatusCancelled, "cancelled"},
		{StatusFailed, "failed"},
		{Status(42), "status(42)"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Fatalf("String() = %q; want %q", got, tc.want)
		}
	}
}

func TestIndexError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	e := newIndexError(17, cause)
	if got, want := e.Error(), "item 17: disk full"; got != want {
		t.Fatalf("Error() = %q; want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("IndexError must unwrap to its cause")
	}
}

func TestIndexError_Format(t *testing.T) {
	e := newIndexError(3, errors.New("boom"))
	if got, want := fmt.Sprintf("%s", e), "item 3: boom"; got != want {
		t.Fatalf("%%s = %q; want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", e), `"item 3: boom"`; got != want {
		t.Fatalf("%%q = %q; want %q", got, want)
	}
	if got, want := fmt.Sprintf("%v", e), "item 3: boom"; got != want {
		t.Fatalf("%%v = %q; want %q", got, want)
	}
	if got := fmt.Sprintf("%+v", e); got != "item 3: boom" {
		t.Fatalf("%%+v = %q; want %q", got, "item 3: boom")
	}
}

func TestExtractIndex(t *testing.T) {
	cause := errors.New("boom")
	e := newIndexError(99, cause)

	if idx, ok := ExtractIndex(e); !ok || idx != 99 {
		t.Fatalf("ExtractIndex = (%d, %v); want (99, true)", idx, ok)
	}
	if idx, ok := ExtractIndex(fmt.Errorf("wrapped: %w", e)); !ok || idx != 99 {
		t.Fatalf("ExtractIndex through wrapping = (%d, %v); want (99, true)", idx, ok)
	}
	if _, ok := ExtractIndex(cause); ok {
		t.Fatalf("ExtractIndex must report false for untagged errors")
	}
	if _, ok := ExtractIndex(nil); ok {
		t.Fatalf("ExtractIndex must report false for nil")
	}
}

func TestResult_Err(t *testing.T) {
	r := &Result{Status: StatusCompleted, Completed: 5, Total: 5}
	if r.Err() != nil {
		t.Fatalf("Err must be nil without failures")
	}

	cause := errors.New("boom")
	r = &Result{
		Status:   StatusFailed,
		Failures: []*IndexError{newIndexError(1, cause), newIndexError(4, errors.New("other"))},
	}
	err := r.Err()
	if err == nil {
		t.Fatalf("Err must aggregate failures")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("aggregate must contain the original cause")
	}
	if idx, ok := ExtractIndex(err); !ok || idx != 1 {
		t.Fatalf("ExtractIndex on aggregate = (%d, %v); want (1, true)", idx, ok)
	}
}
