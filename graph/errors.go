package graph

import "errors"

var (
	// ErrAlreadyStarted is returned when wiring is attempted on a running
	// graph. Assembly happens once, before Start.
	ErrAlreadyStarted = errors.New("graph already started")

	// ErrTeardownTimeout is returned when sources do not stop within the
	// teardown budget.
	ErrTeardownTimeout = errors.New("graph teardown timed out")
)
