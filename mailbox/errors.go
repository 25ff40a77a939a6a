package mailbox

import "errors"

// ErrMailboxClosed is returned by Address.Send after the graph has been torn
// down. The send is rejected, never silently dropped.
var ErrMailboxClosed = errors.New("mailbox is closed")
