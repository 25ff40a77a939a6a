package signal

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/dataflow/observability"
)

// Fold threads an accumulator over an action signal: for each action a it
// computes state = update(a, state) and emits the new state. This is the
// foldp of FRP literature.
//
// Guarantees:
//   - emission order equals action order, one emission per action;
//   - the initial state is never emitted; it is readable via Current;
//   - actions merged into the same pulse fold strictly sequentially.
//
// update must be pure: no I/O, no hidden state, deterministic in its inputs.
// The fold holds the runtime's only accumulator.
func Fold[A, S any](update func(A, S) S, initial S, actions *Signal[A]) *Signal[S] {
	out := newSignal(actions.d, initial)
	state := initial
	observer := actions.d.Observer()

	actions.Subscribe(func(a A) {
		state = update(a, state)

		observer.OnEvent(context.Background(), observability.Event{
			Type:      EventFoldStep,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "signal.Fold",
			Data:      map[string]any{"tick": actions.d.tick},
		})

		out.emit(state)
	})
	return out
}
