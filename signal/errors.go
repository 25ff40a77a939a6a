package signal

import "errors"

// ErrDispatcherClosed is returned by Source.Push and Dispatcher.Admit after
// the dispatcher has been closed. Late producers get an error, never a panic
// and never a silent drop.
var ErrDispatcherClosed = errors.New("dispatcher is closed")
