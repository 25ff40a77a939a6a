// Package mailbox provides addressable broadcast endpoints for injecting
// external events into a dataflow graph.
//
// A mailbox pairs a write-side Address with a read-side signal. Sending to
// the address is the only way UI widgets, timers, sockets or any other
// producer originates an event; the reducer never learns where an action
// came from.
//
//	d := signal.NewDispatcher(nil)
//	mb := mailbox.New(d, "")
//
//	mb.Signal().Subscribe(func(s string) { fmt.Println(s) })
//
//	if err := mb.Address().Send("Hello"); err != nil {
//	    log.Fatal(err)
//	}
//
// The signal's current value starts at the mailbox default; the default is
// readable but never delivered as an event. Every sent value is delivered to
// every subscriber, in send order, before Send returns. After the dispatcher
// is closed, Send reports ErrMailboxClosed to the caller.
//
// A mailbox owns exactly one signal and exactly one address. Independent
// mailboxes are fully independent; only a downstream merge imposes an order
// between them.
package mailbox
