package mailbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/dataflow/observability"
	"github.com/tailored-agentic-units/dataflow/signal"
)

// Mailbox owns one root signal and the single address bound to it.
type Mailbox[T any] struct {
	id       string
	src      *signal.Source[T]
	address  *Address[T]
	metrics  *Metrics
	observer observability.Observer
}

// New creates a mailbox on the given dispatcher. The read-side signal's
// current value starts at defaultValue; the default is not an emission.
func New[T any](d *signal.Dispatcher, defaultValue T) *Mailbox[T] {
	mb := &Mailbox[T]{
		id:       uuid.Must(uuid.NewV7()).String(),
		src:      signal.NewSource(d, defaultValue),
		metrics:  NewMetrics(),
		observer: d.Observer(),
	}
	mb.address = &Address[T]{mailbox: mb}

	mb.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventMailboxCreate,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "mailbox",
		Data:      map[string]any{"mailbox_id": mb.id},
	})

	return mb
}

// ID returns the mailbox's unique identifier.
func (mb *Mailbox[T]) ID() string {
	return mb.id
}

// Address returns the write-side handle. Hand it to the one collaborator
// that legitimately originates this kind of event.
func (mb *Mailbox[T]) Address() *Address[T] {
	return mb.address
}

// Signal returns the read-side signal for subscription and derivation.
func (mb *Mailbox[T]) Signal() *signal.Signal[T] {
	return mb.src.Signal()
}

// Metrics returns a snapshot of the mailbox's delivery counters.
func (mb *Mailbox[T]) Metrics() MetricsSnapshot {
	return mb.metrics.Snapshot()
}

// Address is a write-only handle bound to exactly one mailbox.
type Address[T any] struct {
	mailbox *Mailbox[T]
}

// Send injects value as one event. Delivery to every subscriber of the
// mailbox's signal completes, in send order, before Send returns. Safe to
// call from any goroutine; concurrent sends are serialized at graph ingress.
// Returns ErrMailboxClosed after teardown.
func (a *Address[T]) Send(value T) error {
	mb := a.mailbox

	if err := mb.src.Push(value); err != nil {
		mb.metrics.RecordRejected(1)
		mb.observer.OnEvent(context.Background(), observability.Event{
			Type:      EventMailboxReject,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    "mailbox",
			Data:      map[string]any{"mailbox_id": mb.id, "error": err.Error()},
		})
		if errors.Is(err, signal.ErrDispatcherClosed) {
			return fmt.Errorf("mailbox %s: %w", mb.id, ErrMailboxClosed)
		}
		return fmt.Errorf("mailbox %s: %w", mb.id, err)
	}

	mb.metrics.RecordSent(1)
	mb.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventMailboxSend,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "mailbox",
		Data:      map[string]any{"mailbox_id": mb.id},
	})

	return nil
}
