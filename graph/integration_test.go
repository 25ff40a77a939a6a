package graph_test

import (
	"context"
	"testing"
	"time"

	"github.com/tailored-agentic-units/dataflow/action"
	"github.com/tailored-agentic-units/dataflow/graph"
	"github.com/tailored-agentic-units/dataflow/mailbox"
	"github.com/tailored-agentic-units/dataflow/signal"
	"github.com/tailored-agentic-units/dataflow/source"
)

const tagIncrease action.Tag = "increase"

type increase struct{}

func (increase) Tag() action.Tag { return tagIncrease }

type counter struct {
	Count int
}

// Full pipeline: ticker source → mailbox → merge with a UI mailbox → fold →
// subscriber, driven by a running graph.
func TestGraph_EndToEndCounter(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d := g.Dispatcher()
	ticks := mailbox.New[action.Action](d, action.NoOp{})
	ui := mailbox.New[action.Action](d, action.NoOp{})

	actions := signal.Merge(ticks.Signal(), ui.Signal())

	update, err := action.NewTable[counter]().
		Handle(tagIncrease, func(_ action.Action, c counter) counter {
			return counter{Count: c.Count + 1}
		}).
		Reducer(tagIncrease, action.TagNoOp)
	if err != nil {
		t.Fatalf("Reducer() error = %v", err)
	}

	states := signal.Fold(update, counter{}, actions)

	observed := make(chan counter, 64)
	states.Subscribe(func(c counter) {
		observed <- c
	})

	tick := source.NewTicker(ticks.Address(), 10*time.Millisecond, func(time.Time) action.Action {
		return increase{}
	})
	if err := g.AddSource(tick); err != nil {
		t.Fatalf("AddSource() error = %v", err)
	}
	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// The UI mailbox injects from the test goroutine while the ticker runs.
	if err := ui.Address().Send(increase{}); err != nil {
		t.Fatalf("Send error = %v", err)
	}

	deadline := time.After(5 * time.Second)
	var last counter
	for last.Count < 4 {
		select {
		case last = <-observed:
		case <-deadline:
			t.Fatalf("timed out at count %d, want at least 4", last.Count)
		}
	}

	if err := g.Teardown(5 * time.Second); err != nil {
		t.Errorf("Teardown() error = %v", err)
	}

	// Each fold step increments by exactly one, so the observed sequence is
	// dense regardless of which mailbox an action came from.
	if got := states.Current().Count; got < 4 {
		t.Errorf("final count = %d, want at least 4", got)
	}
}
