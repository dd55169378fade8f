package thread

import (
	"runtime"
	"runtime/debug"
	"sync/atomic"
)

var spawnSeq atomic.Int64

// Handle is a join-able reference to a spawned worker. Owning the handle is
// the only way to wait for the worker or learn how it ended.
type Handle[T any] struct {
	id    int64
	done  chan struct{}
	value T
	err   error
}

func newHandle[T any](id int64) *Handle[T] {
	return &Handle[T]{id: id, done: make(chan struct{})}
}

// Spawn runs fn on a new goroutine locked to its own OS thread and returns a
// handle to it. The thread is torn down when fn returns.
//
// fn should own everything it touches: pass data in by value (or through a
// synchronized type) rather than sharing unsynchronized memory with the
// spawner.
func Spawn[T any](fn func() T) *Handle[T] {
	h := newHandle[T](spawnSeq.Add(1))
	go func() {
		runtime.LockOSThread()
		h.run(fn, nil)
	}()
	return h
}

// ID returns the worker's identifier. Handles from a Pool are numbered from 0
// in spawn order; standalone handles use a process-wide sequence.
func (h *Handle[T]) ID() int64 {
	return h.id
}

// Done returns a channel that is closed when the worker has finished.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Join blocks until the worker finishes and returns its result.
//
// If the worker panicked the error is a *PanicError and the value is the zero
// value. The panic is never re-raised in the joining goroutine. Join may be
// called any number of times from any goroutine.
func (h *Handle[T]) Join() (T, error) {
	<-h.done
	return h.value, h.err
}

// run executes fn, capturing a panic or Goexit into the handle. finish, if
// set, observes the outcome before Join unblocks.
func (h *Handle[T]) run(fn func() T, finish func(*Handle[T])) {
	ok := false
	defer close(h.done)
	defer func() {
		if !ok {
			r := recover()
			h.err = &PanicError{
				ID:     h.id,
				Value:  r,
				Stack:  debug.Stack(),
				Goexit: r == nil,
			}
		}
		if finish != nil {
			finish(h)
		}
	}()

	h.value = fn()
	ok = true
}
