package shared

import (
	"sync"
	"sync/atomic"
)

// Mutex owns a value of type T and allows access to it only while locked.
//
// When a holder panics while the lock is held (see Guard.Unlock and With) the
// mutex becomes poisoned: every later acquisition still succeeds but also
// reports a *PoisonError, until ClearPoison is called.
type Mutex[T any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
}

// NewMutex returns an unlocked, unpoisoned Mutex owning v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{value: v}
}

// Lock blocks until the lock is acquired and returns a guard for it.
//
// The guard is always held on return, even when err is non-nil: a poisoned
// lock yields both the guard and a *PoisonError. Callers must Unlock the guard
// in either case.
func (m *Mutex[T]) Lock() (*Guard[T], error) {
	m.mu.Lock()
	return m.acquired()
}

// TryLock acquires the lock if it is free. It returns ErrWouldBlock and a nil
// guard otherwise.
func (m *Mutex[T]) TryLock() (*Guard[T], error) {
	if !m.mu.TryLock() {
		return nil, ErrWouldBlock
	}
	return m.acquired()
}

func (m *Mutex[T]) acquired() (*Guard[T], error) {
	g := &Guard[T]{m: m}
	if m.poisoned.Load() {
		return g, &PoisonError[T]{guard: g}
	}
	return g, nil
}

// With runs fn with exclusive access to the value.
//
// The lock is released on every exit path. If fn does not return normally,
// by panicking or through runtime.Goexit, the mutex is poisoned and unlocked
// and the unwinding continues in the caller. If the mutex is already poisoned
// fn is not run and the *PoisonError is returned.
func (m *Mutex[T]) With(fn func(v *T)) error {
	g, err := m.Lock()
	if err != nil {
		g.release()
		return err
	}

	completed := false
	defer func() {
		if !completed {
			m.poisoned.Store(true)
		}
		g.release()
	}()

	fn(g.Value())
	completed = true
	return nil
}

// IsPoisoned reports whether a holder ended abnormally while holding the lock.
func (m *Mutex[T]) IsPoisoned() bool {
	return m.poisoned.Load()
}

// ClearPoison marks the protected value as consistent again.
func (m *Mutex[T]) ClearPoison() {
	m.poisoned.Store(false)
}

// Guard is proof that its Mutex is held.
type Guard[T any] struct {
	m        *Mutex[T]
	released bool
}

// Value returns a pointer to the protected value. It must not be used after
// Unlock.
func (g *Guard[T]) Value() *T {
	if g.released {
		panic("shared: use of released guard")
	}
	return &g.m.value
}

// Unlock releases the lock.
//
// When Unlock is deferred directly (defer g.Unlock()) and the holder is
// panicking, the mutex is poisoned before it is released and the panic is
// re-raised. A holder leaving through runtime.Goexit is not detected here;
// use With when that matters.
func (g *Guard[T]) Unlock() {
	if g.released {
		panic("shared: unlock of released guard")
	}
	// recover only yields a value when Unlock itself is the deferred call
	if r := recover(); r != nil {
		g.m.poisoned.Store(true)
		g.release()
		panic(r)
	}
	g.release()
}

func (g *Guard[T]) release() {
	g.released = true
	g.m.mu.Unlock()
}
