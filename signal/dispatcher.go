package signal

import (
	"context"
	"sync"
	"time"

	"github.com/tailored-agentic-units/dataflow/observability"
)

// flusher is a node that buffered work during the current pulse and must be
// drained before the pulse completes. Merge nodes are the only implementors.
type flusher interface {
	flush()
}

// Dispatcher serializes external events into a single propagation timeline.
//
// Every value entering the graph is admitted through the dispatcher, which
// holds the only lock in the runtime. An admitted event propagates through
// every derived signal and subscriber before the next event is admitted, so
// nothing below the ingress boundary needs synchronization.
//
// Each admission is one pulse, identified by a monotonically increasing tick.
// Nodes that need pulse-scoped ordering (merge) register themselves with the
// active pulse and are drained, in registration order, before the admitting
// call returns.
type Dispatcher struct {
	mu       sync.Mutex
	tick     uint64
	inPulse  bool
	flushes  []flusher
	closed   bool
	observer observability.Observer
}

// NewDispatcher creates a dispatcher. A nil observer defaults to
// NoOpObserver.
func NewDispatcher(observer observability.Observer) *Dispatcher {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	return &Dispatcher{observer: observer}
}

// Admit runs fn as one pulse on the dispatch timeline. fn originates exactly
// one event on a root signal; the event and everything it cascades into run
// to completion before Admit returns. Returns ErrDispatcherClosed after
// Close.
func (d *Dispatcher) Admit(fn func()) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	d.tick++
	d.inPulse = true
	fn()
	d.drain()
	d.inPulse = false

	d.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventDispatchAdmit,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "signal.Dispatcher",
		Data:      map[string]any{"tick": d.tick},
	})

	return nil
}

// drain runs deferred flushes until none remain. A flush may cascade into
// further registrations; those are appended and drained in the same pulse.
func (d *Dispatcher) drain() {
	for len(d.flushes) > 0 {
		f := d.flushes[0]
		d.flushes = d.flushes[1:]
		f.flush()
	}
}

// deferFlush schedules f to run before the active pulse completes. Outside a
// pulse the node flushes immediately.
func (d *Dispatcher) deferFlush(f flusher) {
	if !d.inPulse {
		f.flush()
		return
	}
	d.flushes = append(d.flushes, f)
}

// Tick returns the number of events admitted so far.
func (d *Dispatcher) Tick() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tick
}

// Observer returns the dispatcher's observer.
func (d *Dispatcher) Observer() observability.Observer {
	return d.observer
}

// Close tears down the timeline. In-flight pulses complete first; subsequent
// Admit and Push calls return ErrDispatcherClosed. Close is idempotent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true

	d.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventDispatchClose,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "signal.Dispatcher",
		Data:      map[string]any{"ticks": d.tick},
	})
}

// Closed reports whether the dispatcher has been closed.
func (d *Dispatcher) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
