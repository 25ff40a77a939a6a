package action

import "fmt"

// Table accumulates per-tag state transformations and builds a total reducer
// from them. Wiring mistakes (duplicate or nil handlers, uncovered tags) are
// collected and surfaced by Reducer, so a table literal can be written as one
// fluent chain.
type Table[S any] struct {
	handlers map[Tag]Reducer[S]
	err      error
}

// NewTable creates an empty dispatch table for states of type S.
func NewTable[S any]() *Table[S] {
	return &Table[S]{handlers: make(map[Tag]Reducer[S])}
}

// Handle registers the transformation for a tag. Registering a tag twice or
// passing a nil function is recorded and reported by Reducer.
func (t *Table[S]) Handle(tag Tag, fn Reducer[S]) *Table[S] {
	if t.err != nil {
		return t
	}
	if fn == nil {
		t.err = fmt.Errorf("%w: %s", ErrNilHandler, tag)
		return t
	}
	if _, exists := t.handlers[tag]; exists {
		t.err = fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
		return t
	}
	t.handlers[tag] = fn
	return t
}

// Reducer builds the program's reducer, verifying that every declared tag has
// a handler. TagNoOp defaults to the identity transformation when declared
// but not handled. The returned reducer panics on a tag outside the declared
// set: the set is closed at assembly time, so an undeclared tag reaching the
// fold is a programming defect, not an event.
func (t *Table[S]) Reducer(tags ...Tag) (Reducer[S], error) {
	if t.err != nil {
		return nil, t.err
	}

	declared := make(map[Tag]Reducer[S], len(tags))
	for _, tag := range tags {
		fn, ok := t.handlers[tag]
		if !ok {
			if tag == TagNoOp {
				fn = Identity[S]
			} else {
				return nil, fmt.Errorf("%w: %s", ErrUnhandledTag, tag)
			}
		}
		declared[tag] = fn
	}

	for tag := range t.handlers {
		if _, ok := declared[tag]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndeclaredTag, tag)
		}
	}

	return func(a Action, state S) S {
		fn, ok := declared[a.Tag()]
		if !ok {
			panic(fmt.Sprintf("action: tag %q outside the declared set", a.Tag()))
		}
		return fn(a, state)
	}, nil
}
