package signal

// Signal is a push-based, time-ordered sequence of values of type T.
//
// A signal always carries a current value: the default it was created with,
// or the most recently emitted value. Emissions and the current value are
// distinct; a fold signal, for example, starts with a readable initial state
// that is never delivered to subscribers.
//
// Signals are not safe for concurrent mutation. All emissions happen on the
// dispatch timeline, and wiring happens at assembly time before events flow.
type Signal[T any] struct {
	d       *Dispatcher
	subs    []func(T)
	current T
}

func newSignal[T any](d *Dispatcher, initial T) *Signal[T] {
	return &Signal[T]{d: d, current: initial}
}

// Subscribe attaches fn to the signal. fn is invoked exactly once per
// emission, in emission order, with a complete value. Subscribers attached
// earlier are invoked earlier.
func (s *Signal[T]) Subscribe(fn func(T)) {
	s.subs = append(s.subs, fn)
}

// Current returns the signal's present value without subscribing. Before any
// emission this is the signal's initial value.
func (s *Signal[T]) Current() T {
	return s.current
}

// emit delivers v to every subscriber, depth first, and updates the current
// value. Only reachable from the dispatch timeline.
func (s *Signal[T]) emit(v T) {
	s.current = v
	for _, fn := range s.subs {
		fn(v)
	}
}

// Source is the write side of a root signal. It is the only way a value
// enters the graph; everything downstream is derived.
type Source[T any] struct {
	d   *Dispatcher
	sig *Signal[T]
}

// NewSource creates a root signal whose current value starts at initial.
// The initial value is readable via Current but is not an emission.
func NewSource[T any](d *Dispatcher, initial T) *Source[T] {
	return &Source[T]{d: d, sig: newSignal(d, initial)}
}

// Signal returns the read side of the source.
func (s *Source[T]) Signal() *Signal[T] {
	return s.sig
}

// Push admits v as one event on the dispatch timeline and propagates it
// through the graph before returning. Safe to call from any goroutine.
// Returns ErrDispatcherClosed after the dispatcher is closed.
func (s *Source[T]) Push(v T) error {
	return s.d.Admit(func() {
		s.sig.emit(v)
	})
}
