// Package graph assembles and runs a dataflow program: it owns the
// dispatcher, the mailboxes and signals created on it, and the producer
// sources feeding them.
//
// Wiring happens once at startup:
//
//	g, err := graph.New(graph.DefaultConfig())
//	d := g.Dispatcher()
//
//	clicks := mailbox.New[action.Action](d, action.NoOp{})
//	keys := mailbox.New[action.Action](d, action.NoOp{})
//
//	actions := signal.Merge(clicks.Signal(), keys.Signal())
//	states := signal.Fold(update, initial, actions)
//	states.Subscribe(render)
//
//	g.AddSource(tickerSource)
//	g.Start(ctx)
//	defer g.Teardown(5 * time.Second)
//
// Start launches each source in its own goroutine; their concurrency is
// absorbed at the dispatcher's ingress, so everything downstream of a
// mailbox runs on a single logical timeline. Teardown stops the sources,
// waits for them, and closes the dispatcher; addresses reject sends from
// then on. Admitted events always run to completion, teardown or not.
package graph
