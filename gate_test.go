package batch

import (
	"sync"
	"testing"
)

func TestGate_InitialState(t *testing.T) {
	g := NewGate()
	if g.IsCancelled() {
		t.Fatalf("new gate must not be cancelled")
	}
	select {
	case <-g.Done():
		t.Fatalf("Done channel must be open on a new gate")
	default:
	}
}

func TestGate_SignalTransitionsOnce(t *testing.T) {
	g := NewGate()
	g.Signal()
	if !g.IsCancelled() {
		t.Fatalf("IsCancelled must report true after Signal")
	}
	select {
	case <-g.Done():
	default:
		t.Fatalf("Done channel must be closed after Signal")
	}

	// terminal state: repeated signals change nothing and do not panic
	g.Signal()
	g.Signal()
	if !g.IsCancelled() {
		t.Fatalf("gate must stay cancelled")
	}
}

func TestGate_ConcurrentSignalIdempotent(t *testing.T) {
	g := NewGate()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Signal()
		}()
	}
	wg.Wait()
	if !g.IsCancelled() {
		t.Fatalf("gate must be cancelled after concurrent signals")
	}
	select {
	case <-g.Done():
	default:
		t.Fatalf("Done channel must be closed")
	}
}
