package poisson

// Mapped lazily converts each emitted point into some caller type as
// it is pulled - no intermediate slice, O(1) extra memory per point.
type Mapped[T any] struct {
	it *Iterator
	fn func(Point) T
}

// Map wraps an iterator so each point comes out as T. Conversion
// composes with the pull protocol: nothing is generated until you ask.
func Map[T any](it *Iterator, fn func(Point) T) *Mapped[T] {
	return &Mapped[T]{it: it, fn: fn}
}

// Next returns the next converted point; ok is false once the
// underlying iterator is exhausted.
func (m *Mapped[T]) Next() (T, bool) {
	p := m.it.Next()
	if p == nil {
		var zero T
		return zero, false
	}
	return m.fn(p), true
}

// Collect drains the iterator, returning every remaining point
// converted, in emission order.
func (m *Mapped[T]) Collect() []T {
	out := []T{}
	for v, ok := m.Next(); ok; v, ok = m.Next() {
		out = append(out, v)
	}
	return out
}

// ForEach pulls the iterator to exhaustion calling fn on each point
func ForEach(it *Iterator, fn func(Point)) {
	for p := it.Next(); p != nil; p = it.Next() {
		fn(p)
	}
}
