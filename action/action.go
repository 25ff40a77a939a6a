package action

// Tag is the discriminant of an action variant. The set of tags a program
// uses is closed and known at graph-assembly time.
type Tag string

// TagNoOp is the built-in "nothing happened" variant. Every table maps it to
// the identity transformation unless a handler overrides it.
const TagNoOp Tag = "noop"

// Action is a tagged event value describing something that happened. Payload
// fields live on the concrete type; handlers recover them by type assertion.
type Action interface {
	Tag() Tag
}

// NoOp is the payload-free action for TagNoOp.
type NoOp struct{}

func (NoOp) Tag() Tag { return TagNoOp }

// Reducer computes the next state from an action and the prior state. It
// must be pure: no I/O, no hidden state, deterministic in its two inputs.
type Reducer[S any] func(Action, S) S

// Identity returns the state unchanged, regardless of the action.
func Identity[S any](_ Action, state S) S {
	return state
}
