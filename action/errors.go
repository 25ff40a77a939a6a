package action

import "errors"

var (
	// ErrUnhandledTag is returned by Table.Reducer when a declared tag has
	// no handler.
	ErrUnhandledTag = errors.New("action tag has no handler")

	// ErrDuplicateTag is returned by Table.Reducer when Handle was called
	// twice for the same tag.
	ErrDuplicateTag = errors.New("action tag handled twice")

	// ErrNilHandler is returned by Table.Reducer when Handle was called with
	// a nil function.
	ErrNilHandler = errors.New("nil handler for action tag")

	// ErrUndeclaredTag is returned by Table.Reducer when a handler was
	// registered for a tag missing from the declared set.
	ErrUndeclaredTag = errors.New("handler registered for undeclared tag")
)
