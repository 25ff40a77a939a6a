package graph_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tailored-agentic-units/dataflow/graph"
	"github.com/tailored-agentic-units/dataflow/mailbox"
)

// blockingSource runs until its context is cancelled.
type blockingSource struct {
	started chan struct{}
}

func (s *blockingSource) Name() string { return "blocking" }

func (s *blockingSource) Run(ctx context.Context) error {
	close(s.started)
	<-ctx.Done()
	return nil
}

// stubbornSource ignores cancellation.
type stubbornSource struct{}

func (stubbornSource) Name() string { return "stubborn" }

func (stubbornSource) Run(ctx context.Context) error {
	select {}
}

func TestNew_ResolvesObserverFromRegistry(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Dispatcher() == nil {
		t.Error("Dispatcher() = nil")
	}
	if g.ID() == "" {
		t.Error("ID() is empty")
	}
}

func TestNew_UnknownObserver(t *testing.T) {
	cfg := graph.DefaultConfig()
	cfg.Observer = "nonexistent"

	if _, err := graph.New(cfg); err == nil {
		t.Error("New() should fail for an unknown observer")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := graph.DefaultConfig()
	cfg.LogLevel = "loud"

	if _, err := graph.New(cfg); err == nil {
		t.Error("New() should fail for an invalid config")
	}
}

func TestGraph_StartAndTeardown(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src := &blockingSource{started: make(chan struct{})}
	if err := g.AddSource(src); err != nil {
		t.Fatalf("AddSource() error = %v", err)
	}

	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	select {
	case <-src.started:
	case <-time.After(2 * time.Second):
		t.Fatal("source did not start")
	}

	if err := g.Teardown(5 * time.Second); err != nil {
		t.Errorf("Teardown() error = %v", err)
	}
}

func TestGraph_StartTwice(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer g.Teardown(time.Second)

	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := g.Start(context.Background()); !errors.Is(err, graph.ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
}

func TestGraph_AddSourceAfterStart(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer g.Teardown(time.Second)

	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	err = g.AddSource(&blockingSource{started: make(chan struct{})})
	if !errors.Is(err, graph.ErrAlreadyStarted) {
		t.Errorf("AddSource() after Start error = %v, want ErrAlreadyStarted", err)
	}
}

func TestGraph_TeardownInvalidatesAddresses(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	mb := mailbox.New(g.Dispatcher(), 0)
	if err := mb.Address().Send(1); err != nil {
		t.Fatalf("Send before teardown error = %v", err)
	}

	if err := g.Teardown(time.Second); err != nil {
		t.Fatalf("Teardown() error = %v", err)
	}

	if err := mb.Address().Send(2); !errors.Is(err, mailbox.ErrMailboxClosed) {
		t.Errorf("Send after teardown error = %v, want ErrMailboxClosed", err)
	}
}

func TestGraph_TeardownWithoutStart(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.Teardown(time.Second); err != nil {
		t.Errorf("Teardown() on unstarted graph error = %v", err)
	}
}

func TestGraph_TeardownTimeout(t *testing.T) {
	g, err := graph.New(graph.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.AddSource(stubbornSource{}); err != nil {
		t.Fatalf("AddSource() error = %v", err)
	}
	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	err = g.Teardown(50 * time.Millisecond)
	if !errors.Is(err, graph.ErrTeardownTimeout) {
		t.Errorf("Teardown() error = %v, want ErrTeardownTimeout", err)
	}
}
