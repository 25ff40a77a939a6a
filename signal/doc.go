// Package signal provides the push-based dataflow engine: time-varying
// signals, derivation combinators, and the dispatcher that serializes
// external events into a single propagation timeline.
//
// # Signals
//
// A Signal[T] is a time-ordered sequence of values with a readable current
// value. Derived signals are views over their sources; they hold no queue and
// recompute per upstream event:
//
//	counts := signal.Map(clicks, func(c Click) int { return c.Amount })
//	evens := signal.Filter(counts, 0, func(n int) bool { return n%2 == 0 })
//
// # Sources
//
// External values enter the graph only through a Source, which admits each
// push through the dispatcher:
//
//	d := signal.NewDispatcher(nil)
//	src := signal.NewSource(d, 0)
//	src.Signal().Subscribe(func(n int) { fmt.Println(n) })
//	src.Push(42)
//
// # Merging
//
// Merge combines two signals of the same type. Each source's internal order
// is preserved. When one admitted event reaches both inputs of a merge (a
// diamond in the graph), the first argument's value is delivered first; the
// tie-break is deterministic and covered by tests.
//
// # Folding
//
// Fold threads an accumulator over an action signal, emitting one state per
// action:
//
//	states := signal.Fold(update, initialState, actions)
//
// The initial state is never emitted; it is readable via Current before the
// first action arrives.
//
// # Timeline
//
// Propagation is synchronous. A push runs through every derived signal and
// subscriber before Push returns, and the dispatcher admits one event at a
// time. Subscribers are invoked in subscription order, depth first. Graph
// wiring (Map, Merge, Fold, Subscribe) happens at assembly time and is not
// synchronized against a running dispatch.
package signal
