package graph

import "github.com/tailored-agentic-units/dataflow/observability"

const (
	EventGraphStart    observability.EventType = "graph.start"
	EventGraphTeardown observability.EventType = "graph.teardown"
	EventSourceStop    observability.EventType = "source.stop"
)
