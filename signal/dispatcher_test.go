package signal_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/tailored-agentic-units/dataflow/signal"
)

func TestDispatcher_TickCountsAdmissions(t *testing.T) {
	d := signal.NewDispatcher(nil)
	src := signal.NewSource(d, 0)

	for i := 0; i < 3; i++ {
		src.Push(i)
	}

	if got := d.Tick(); got != 3 {
		t.Errorf("Tick() = %d, want 3", got)
	}
}

func TestDispatcher_CloseRejectsLateEvents(t *testing.T) {
	d := signal.NewDispatcher(nil)
	src := signal.NewSource(d, 0)

	if err := src.Push(1); err != nil {
		t.Fatalf("Push before close error = %v", err)
	}

	d.Close()

	err := src.Push(2)
	if !errors.Is(err, signal.ErrDispatcherClosed) {
		t.Errorf("Push after close error = %v, want ErrDispatcherClosed", err)
	}
	if !d.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := signal.NewDispatcher(nil)
	d.Close()
	d.Close()

	if !d.Closed() {
		t.Error("Closed() = false after repeated Close")
	}
}

// Concurrent producers are serialized at ingress: the subscriber appends to a
// plain slice with no locking, and each producer's events keep their relative
// order.
func TestDispatcher_SerializesConcurrentProducers(t *testing.T) {
	d := signal.NewDispatcher(nil)
	src := signal.NewSource(d, [2]int{})

	var got [][2]int
	src.Signal().Subscribe(func(v [2]int) { got = append(got, v) })

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := src.Push([2]int{p, i}); err != nil {
					t.Errorf("Push error = %v", err)
					return
				}
			}
		}(p)
	}
	wg.Wait()

	if len(got) != producers*perProducer {
		t.Fatalf("subscriber saw %d events, want %d", len(got), producers*perProducer)
	}

	next := make([]int, producers)
	for _, v := range got {
		p, i := v[0], v[1]
		if i != next[p] {
			t.Fatalf("producer %d events out of order: got seq %d, want %d", p, i, next[p])
		}
		next[p]++
	}
}
