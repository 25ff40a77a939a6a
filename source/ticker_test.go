package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tailored-agentic-units/dataflow/mailbox"
	"github.com/tailored-agentic-units/dataflow/signal"
	"github.com/tailored-agentic-units/dataflow/source"
)

func TestTicker_EmitsIntoMailbox(t *testing.T) {
	d := signal.NewDispatcher(nil)
	mb := mailbox.New(d, time.Time{})

	received := make(chan time.Time, 16)
	mb.Signal().Subscribe(func(ts time.Time) {
		received <- ts
	})

	tick := source.NewTicker(mb.Address(), 10*time.Millisecond, func(now time.Time) time.Time {
		return now
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tick.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for tick %d", i+1)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v, want nil on cancellation", err)
	}
}

func TestTicker_StopsWhenGraphTornDown(t *testing.T) {
	d := signal.NewDispatcher(nil)
	mb := mailbox.New(d, 0)

	tick := source.NewTicker(mb.Address(), 5*time.Millisecond, func(time.Time) int {
		return 1
	})

	d.Close()

	done := make(chan error, 1)
	go func() { done <- tick.Run(context.Background()) }()

	select {
	case err := <-done:
		if !errors.Is(err, mailbox.ErrMailboxClosed) {
			t.Errorf("Run() error = %v, want ErrMailboxClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after teardown")
	}
}
