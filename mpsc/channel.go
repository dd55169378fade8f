package mpsc

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// channel is the state shared by both ends.
type channel[T any] struct {
	mu           sync.Mutex
	ready        *sync.Cond
	buf          *queue.Queue
	senders      int
	receiverGone bool
}

// New creates a channel and returns its send and receive endpoints.
//
// The buffer is unbounded: Send never blocks. Values are delivered exactly
// once, in send order.
func New[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{buf: queue.New(), senders: 1}
	ch.ready = sync.NewCond(&ch.mu)
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Sender is the sending endpoint of a channel.
type Sender[T any] struct {
	ch     *channel[T]
	closed atomic.Bool
}

// Send buffers v for the receiver without blocking.
//
// If the receiver has been closed the value is returned inside a *SendError,
// which matches ErrDisconnected.
func (s *Sender[T]) Send(v T) error {
	if s.closed.Load() {
		return ErrClosed
	}

	ch := s.ch
	ch.mu.Lock()
	if ch.receiverGone {
		ch.mu.Unlock()
		return &SendError[T]{Value: v}
	}
	ch.buf.Add(v)
	ch.mu.Unlock()

	ch.ready.Signal()
	return nil
}

// Clone returns another sender for the same channel. The receiver sees a
// disconnection only after every sender has been closed.
func (s *Sender[T]) Clone() (*Sender[T], error) {
	ch := s.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()

	// a disconnected channel stays disconnected
	if s.closed.Load() || ch.senders == 0 {
		return nil, ErrClosed
	}
	ch.senders++
	return &Sender[T]{ch: ch}, nil
}

// Close drops this sender. Closing an already closed sender is a no-op.
func (s *Sender[T]) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	ch := s.ch
	ch.mu.Lock()
	ch.senders--
	last := ch.senders == 0
	ch.mu.Unlock()

	if last {
		ch.ready.Broadcast()
	}
}

// Receiver is the receiving endpoint of a channel.
type Receiver[T any] struct {
	ch     *channel[T]
	closed atomic.Bool
}

// Recv blocks until a value is available and returns it. Once every sender
// is closed and the buffer is drained it returns ErrDisconnected.
func (r *Receiver[T]) Recv() (T, error) {
	var zero T
	if r.closed.Load() {
		return zero, ErrClosed
	}

	ch := r.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()

	for ch.buf.Length() == 0 && ch.senders > 0 {
		ch.ready.Wait()
	}
	if ch.buf.Length() == 0 {
		return zero, ErrDisconnected
	}
	return r.pop(), nil
}

// TryRecv returns a buffered value without blocking. It returns ErrEmpty if
// nothing is buffered and ErrDisconnected if nothing ever will be.
func (r *Receiver[T]) TryRecv() (T, error) {
	var zero T
	if r.closed.Load() {
		return zero, ErrClosed
	}

	ch := r.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.buf.Length() > 0 {
		return r.pop(), nil
	}
	if ch.senders == 0 {
		return zero, ErrDisconnected
	}
	return zero, ErrEmpty
}

// pop removes the oldest value. ch.mu must be held.
func (r *Receiver[T]) pop() T {
	v, _ := r.ch.buf.Remove().(T)
	return v
}

// All yields received values until the channel disconnects.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := r.Recv()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of buffered values.
func (r *Receiver[T]) Len() int {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()
	return r.ch.buf.Length()
}

// Close drops the receiver and discards buffered values. Later sends fail
// with ErrDisconnected. Closing twice is a no-op.
func (r *Receiver[T]) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}

	ch := r.ch
	ch.mu.Lock()
	ch.receiverGone = true
	ch.buf = queue.New()
	ch.mu.Unlock()
}
