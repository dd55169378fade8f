package shared

import "sync/atomic"

type arcInner[T any] struct {
	value  T
	strong atomic.Int64
	drop   func(T)
}

// Arc is an atomically reference-counted handle to a shared value. Each owner
// holds its own *Arc obtained from Clone and calls Release exactly once when
// it is done with it.
//
// Arc only shares; it does not synchronize. Wrap mutable values in a Mutex.
type Arc[T any] struct {
	inner    *arcInner[T]
	released atomic.Bool
}

// NewArc returns the first handle to v, with a strong count of 1.
func NewArc[T any](v T) *Arc[T] {
	return NewArcWithDrop(v, nil)
}

// NewArcWithDrop is like NewArc, but calls drop with the value when the last
// handle is released.
func NewArcWithDrop[T any](v T, drop func(T)) *Arc[T] {
	in := &arcInner[T]{value: v, drop: drop}
	in.strong.Store(1)
	return &Arc[T]{inner: in}
}

// Clone returns a new handle to the same value and increments the count.
func (a *Arc[T]) Clone() *Arc[T] {
	a.mustBeLive()
	a.inner.strong.Add(1)
	return &Arc[T]{inner: a.inner}
}

// Get returns the shared value.
func (a *Arc[T]) Get() T {
	a.mustBeLive()
	return a.inner.value
}

// Release gives up this handle. It reports true when it was the last one, in
// which case the drop function, if any, has run. Releasing a handle twice
// panics with ErrReleased.
func (a *Arc[T]) Release() bool {
	if !a.released.CompareAndSwap(false, true) {
		panic(ErrReleased)
	}
	if a.inner.strong.Add(-1) > 0 {
		return false
	}
	if a.inner.drop != nil {
		a.inner.drop(a.inner.value)
	}
	return true
}

// StrongCount returns the number of live handles.
func (a *Arc[T]) StrongCount() int64 {
	return a.inner.strong.Load()
}

// Ptr reports whether a and b share the same value.
func (a *Arc[T]) Ptr(b *Arc[T]) bool {
	return a.inner == b.inner
}

func (a *Arc[T]) mustBeLive() {
	if a.released.Load() {
		panic(ErrReleased)
	}
}
