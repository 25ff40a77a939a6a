package signal

// Map derives a signal that emits f(e) for every event e on s, at the same
// logical instant, exactly once, in source order. The derived signal's
// initial value is f applied to the source's current value.
func Map[T, U any](s *Signal[T], f func(T) U) *Signal[U] {
	out := newSignal(s.d, f(s.current))
	s.Subscribe(func(v T) {
		out.emit(f(v))
	})
	return out
}

// Filter derives a signal that forwards only events satisfying keep. The
// initial value is the source's current value when it satisfies keep,
// otherwise the given fallback.
func Filter[T any](s *Signal[T], fallback T, keep func(T) bool) *Signal[T] {
	initial := fallback
	if keep(s.current) {
		initial = s.current
	}
	out := newSignal(s.d, initial)
	s.Subscribe(func(v T) {
		if keep(v) {
			out.emit(v)
		}
	})
	return out
}

// Constant creates a signal that holds v and never emits. Useful for
// adapting fixed values into graph wiring.
func Constant[T any](d *Dispatcher, v T) *Signal[T] {
	return newSignal(d, v)
}

// DropRepeats derives a signal that suppresses consecutive duplicate events.
// The initial value is the source's current value.
func DropRepeats[T comparable](s *Signal[T]) *Signal[T] {
	out := newSignal(s.d, s.current)
	last := s.current
	s.Subscribe(func(v T) {
		if v == last {
			return
		}
		last = v
		out.emit(v)
	})
	return out
}

// Merge derives a signal emitting every event from either source, preserving
// each source's internal order. When a single admitted event reaches both
// inputs, a's value is delivered before b's. The initial value is a's
// current value.
//
// Both signals must belong to the same dispatcher; merging across
// dispatchers is an assembly defect and panics.
func Merge[T any](a, b *Signal[T]) *Signal[T] {
	if a.d != b.d {
		panic("signal: merge across dispatchers")
	}

	out := newSignal(a.d, a.current)
	m := &mergeNode[T]{d: a.d, out: out}
	a.Subscribe(func(v T) {
		m.enqueue(0, v)
	})
	b.Subscribe(func(v T) {
		m.enqueue(1, v)
	})
	return out
}

type mergeEvent[T any] struct {
	src   int
	value T
}

// mergeNode buffers the events that reach a merge during one pulse and
// re-emits them in source-priority order when the pulse drains. Within one
// source, arrival order is kept.
type mergeNode[T any] struct {
	d       *Dispatcher
	out     *Signal[T]
	pending []mergeEvent[T]
	queued  bool
}

func (m *mergeNode[T]) enqueue(src int, v T) {
	m.pending = append(m.pending, mergeEvent[T]{src: src, value: v})
	if !m.queued {
		m.queued = true
		m.d.deferFlush(m)
	}
}

func (m *mergeNode[T]) flush() {
	m.queued = false
	pending := m.pending
	m.pending = nil

	// Stable partition: first-argument events first, arrival order within
	// each source.
	for _, ev := range pending {
		if ev.src == 0 {
			m.out.emit(ev.value)
		}
	}
	for _, ev := range pending {
		if ev.src == 1 {
			m.out.emit(ev.value)
		}
	}
}
