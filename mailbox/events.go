package mailbox

import "github.com/tailored-agentic-units/dataflow/observability"

const (
	EventMailboxCreate observability.EventType = "mailbox.create"
	EventMailboxSend   observability.EventType = "mailbox.send"
	EventMailboxReject observability.EventType = "mailbox.reject"
)
