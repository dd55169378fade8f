package future

import "errors"

var (
	// ErrPolledAfterCompletion is the panic value used when a task that
	// already returned Ready is polled again.
	ErrPolledAfterCompletion = errors.New("future: task polled after completion")
)

// Poll is the outcome of a single poll: either Pending or Ready with a value.
//
// The zero value is Pending.
type Poll[T any] struct {
	value T
	ready bool
}

// Pending returns a Poll that signals the task has not finished yet.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Ready returns a Poll carrying the final value of a task.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// IsReady reports whether the poll carries a final value.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Value returns the final value and true, or the zero value and false when
// the poll is Pending.
func (p Poll[T]) Value() (T, bool) {
	return p.value, p.ready
}

func (p Poll[T]) String() string {
	if p.ready {
		return "Ready"
	}
	return "Pending"
}
