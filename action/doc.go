// Package action provides the typed event scaffolding for dataflow programs:
// tagged action values, pure reducers, and a dispatch table that verifies tag
// coverage when the graph is assembled.
//
// An Action is a value with a discriminant Tag drawn from a closed set the
// program declares up front. The reducer for a program is built from a Table
// mapping each tag to its state transformation:
//
//	const (
//	    TagIncrease action.Tag = "increase"
//	    TagSet      action.Tag = "set"
//	)
//
//	table := action.NewTable[Model]().
//	    Handle(TagIncrease, func(a action.Action, m Model) Model {
//	        return Model{Count: m.Count + 1}
//	    }).
//	    Handle(TagSet, func(a action.Action, m Model) Model {
//	        return Model{Count: a.(SetCount).Value}
//	    })
//
//	update, err := table.Reducer(TagIncrease, TagSet, action.TagNoOp)
//
// Reducer fails if any declared tag lacks a handler, so a missing match arm
// is caught while wiring the graph, not while folding events. TagNoOp maps to
// the identity transformation unless a handler overrides it.
//
// Adding a new event source means adding one tag and one Handle call;
// existing handlers are untouched.
package action
