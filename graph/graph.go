package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/dataflow/observability"
	"github.com/tailored-agentic-units/dataflow/signal"
)

// Source is a producer the graph runs for its lifetime. Run blocks until
// ctx is cancelled or the source fails; it injects values only through
// mailbox addresses.
type Source interface {
	Name() string
	Run(ctx context.Context) error
}

// Graph owns a dispatcher and the sources feeding it. Mailboxes and signals
// created on the graph's dispatcher live as long as the graph; nothing is
// released while the graph is running.
type Graph struct {
	name       string
	id         string
	dispatcher *signal.Dispatcher
	observer   observability.Observer
	logger     *slog.Logger

	mu      sync.Mutex
	sources []Source
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option customizes a graph beyond its Config.
type Option func(*Graph)

// WithLogger sets the graph's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// WithObserver sets the observer directly, bypassing the registry lookup of
// cfg.Observer.
func WithObserver(observer observability.Observer) Option {
	return func(g *Graph) {
		g.observer = observer
	}
}

// New creates a graph from cfg. The observer is resolved from the
// observability registry by name unless WithObserver overrides it.
func New(cfg Config, opts ...Option) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph config: %w", err)
	}

	g := &Graph{
		name:   cfg.Name,
		id:     uuid.Must(uuid.NewV7()).String(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.observer == nil {
		observer, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("invalid graph config: %w", err)
		}
		g.observer = observer
	}

	g.dispatcher = signal.NewDispatcher(g.observer)

	g.logger.Debug("graph created",
		slog.String("graph_name", g.name),
		slog.String("graph_id", g.id),
	)

	return g, nil
}

// Name returns the configured graph name.
func (g *Graph) Name() string {
	return g.name
}

// ID returns the graph's unique identifier.
func (g *Graph) ID() string {
	return g.id
}

// Dispatcher returns the graph's dispatcher for wiring mailboxes and
// signals.
func (g *Graph) Dispatcher() *signal.Dispatcher {
	return g.dispatcher
}

// AddSource registers a producer to run for the graph's lifetime. Sources
// are added during assembly, before Start.
func (g *Graph) AddSource(s Source) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrAlreadyStarted
	}
	g.sources = append(g.sources, s)
	return nil
}

// Start launches every registered source in its own goroutine. Producer
// concurrency is absorbed at the dispatcher's ingress; the graph itself
// stays on one logical timeline.
func (g *Graph) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrAlreadyStarted
	}
	g.started = true

	runCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.done = make(chan struct{})

	var wg sync.WaitGroup
	for _, s := range g.sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			if err := s.Run(runCtx); err != nil {
				g.logger.Error("source failed",
					slog.String("graph_name", g.name),
					slog.String("source", s.Name()),
					slog.String("error", err.Error()),
				)
			}
			g.observer.OnEvent(runCtx, observability.Event{
				Type:      EventSourceStop,
				Level:     observability.LevelVerbose,
				Timestamp: time.Now(),
				Source:    "graph",
				Data:      map[string]any{"source": s.Name()},
			})
		}(s)
	}

	go func() {
		wg.Wait()
		close(g.done)
	}()

	g.observer.OnEvent(ctx, observability.Event{
		Type:      EventGraphStart,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "graph",
		Data:      map[string]any{"graph_name": g.name, "sources": len(g.sources)},
	})
	g.logger.Debug("graph started",
		slog.String("graph_name", g.name),
		slog.Int("sources", len(g.sources)),
	)

	return nil
}

// Teardown stops the sources, waits for them up to timeout, and closes the
// dispatcher. Events admitted before the close still run to completion;
// sends issued after it are rejected. Safe to call on a graph that never
// started.
func (g *Graph) Teardown(timeout time.Duration) error {
	g.mu.Lock()
	cancel := g.cancel
	done := g.done
	g.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-time.After(timeout):
			g.dispatcher.Close()
			return fmt.Errorf("%w after %v", ErrTeardownTimeout, timeout)
		}
	}

	g.dispatcher.Close()

	g.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventGraphTeardown,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "graph",
		Data:      map[string]any{"graph_name": g.name, "events": g.dispatcher.Tick()},
	})
	g.logger.Debug("graph torn down", slog.String("graph_name", g.name))

	return nil
}
