// Package source provides producers that originate events at the edge of a
// dataflow graph. A source converts something from the environment (time
// passing, a file changing) into typed values and injects them through a
// mailbox address; it never touches signals or the fold directly.
//
// Sources run as goroutines owned by the graph:
//
//	ticks := mailbox.New[action.Action](d, action.NoOp{})
//	tick := source.NewTicker(ticks.Address(), time.Second, func(time.Time) action.Action {
//	    return Increase{}
//	})
//	g.AddSource(tick)
//
// Validation of raw input happens here, on the producer side, before a value
// becomes an event; by the time an action is on a signal it is well formed.
package source
