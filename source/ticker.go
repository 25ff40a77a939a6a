package source

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/dataflow/mailbox"
)

// Ticker sends one value to an address per interval until its context ends.
type Ticker[T any] struct {
	address  *mailbox.Address[T]
	interval time.Duration
	produce  func(time.Time) T
}

// NewTicker creates a ticker source. produce converts each tick instant
// into the value to send.
func NewTicker[T any](address *mailbox.Address[T], interval time.Duration, produce func(time.Time) T) *Ticker[T] {
	return &Ticker[T]{
		address:  address,
		interval: interval,
		produce:  produce,
	}
}

// Name identifies the source in logs.
func (t *Ticker[T]) Name() string {
	return "ticker"
}

// Run emits until ctx is cancelled. A send rejected by a torn-down graph
// stops the ticker and reports the error.
func (t *Ticker[T]) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := t.address.Send(t.produce(now)); err != nil {
				return err
			}
		}
	}
}
