package future

import "sync/atomic"

// Waker lets a task ask its executor to poll it again.
//
// Wake is safe for concurrent use and may be called any number of times.
// Wakes that arrive before the executor consumes them coalesce into one.
type Waker struct {
	signal chan struct{}
	wakes  atomic.Int64
}

// NewWaker returns a Waker with no pending wake.
func NewWaker() *Waker {
	return &Waker{signal: make(chan struct{}, 1)}
}

// Wake requests that the owning task be polled again.
func (w *Waker) Wake() {
	w.wakes.Add(1)
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// Wakes returns how many times Wake has been called over the waker's lifetime.
func (w *Waker) Wakes() int64 {
	return w.wakes.Load()
}

// take consumes a pending wake without blocking.
func (w *Waker) take() bool {
	select {
	case <-w.signal:
		return true
	default:
		return false
	}
}

// park blocks until a wake is pending and consumes it.
func (w *Waker) park() {
	<-w.signal
}
