// Command counter runs a small dataflow program: a ticker mailbox increments
// a counter, an optional file watcher resets it, and every folded state is
// printed as it is produced.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/tailored-agentic-units/dataflow/action"
	"github.com/tailored-agentic-units/dataflow/graph"
	"github.com/tailored-agentic-units/dataflow/mailbox"
	sig "github.com/tailored-agentic-units/dataflow/signal"
	"github.com/tailored-agentic-units/dataflow/source"
)

const (
	tagIncrease action.Tag = "increase"
	tagReset    action.Tag = "reset"
)

type increase struct{}

func (increase) Tag() action.Tag { return tagIncrease }

type reset struct {
	Path string
}

func (reset) Tag() action.Tag { return tagReset }

type model struct {
	Count  int
	Resets int
}

func main() {
	var (
		configFile = flag.String("config", "", "Path to graph config YAML file")
		interval   = flag.Duration("interval", time.Second, "Tick interval between increments")
		watchFile  = flag.String("watch", "", "File whose changes reset the counter")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg, err := graph.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, _ := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	g, err := graph.New(*cfg, graph.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create graph: %v", err)
	}

	d := g.Dispatcher()

	// One mailbox per event origin; the reducer never sees the difference.
	ticks := mailbox.New[action.Action](d, action.NoOp{})
	changes := mailbox.New(d, source.FileEvent{})

	resets := sig.Map(changes.Signal(), func(ev source.FileEvent) action.Action {
		return reset{Path: ev.Path}
	})
	actions := sig.Merge(ticks.Signal(), resets)

	update, err := action.NewTable[model]().
		Handle(tagIncrease, func(_ action.Action, m model) model {
			return model{Count: m.Count + 1, Resets: m.Resets}
		}).
		Handle(tagReset, func(_ action.Action, m model) model {
			return model{Count: 0, Resets: m.Resets + 1}
		}).
		Reducer(tagIncrease, tagReset, action.TagNoOp)
	if err != nil {
		log.Fatalf("Failed to build reducer: %v", err)
	}

	states := sig.Fold(update, model{}, actions)
	states.Subscribe(func(m model) {
		fmt.Printf("count=%d resets=%d\n", m.Count, m.Resets)
	})

	tick := source.NewTicker(ticks.Address(), *interval, func(time.Time) action.Action {
		return increase{}
	})
	if err := g.AddSource(tick); err != nil {
		log.Fatalf("Failed to add ticker: %v", err)
	}

	if *watchFile != "" {
		watcher, err := source.NewWatcher(changes.Address(), *watchFile, 0, logger)
		if err != nil {
			log.Fatalf("Failed to create watcher: %v", err)
		}
		if err := g.AddSource(watcher); err != nil {
			log.Fatalf("Failed to add watcher: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := g.Start(ctx); err != nil {
		log.Fatalf("Failed to start graph: %v", err)
	}

	<-ctx.Done()

	if err := g.Teardown(5 * time.Second); err != nil {
		log.Fatalf("Teardown failed: %v", err)
	}

	final := states.Current()
	fmt.Printf("final: count=%d resets=%d after %d events\n", final.Count, final.Resets, d.Tick())
}
