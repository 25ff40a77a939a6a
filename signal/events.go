package signal

import "github.com/tailored-agentic-units/dataflow/observability"

const (
	EventDispatchAdmit observability.EventType = "dispatch.admit"
	EventDispatchClose observability.EventType = "dispatch.close"
	EventFoldStep      observability.EventType = "fold.step"
)
