package future

// Task is a cooperative computation advanced one step at a time by Poll.
//
// Poll must not block. When it returns Pending the task is responsible for
// arranging a re-poll by calling w.Wake, either before returning or later from
// whatever event it is waiting on. Once Poll has returned Ready the task must
// not be polled again.
type Task[T any] interface {
	Poll(w *Waker) Poll[T]
}

// TaskFunc adapts an ordinary function to the Task interface.
type TaskFunc[T any] func(w *Waker) Poll[T]

// Poll calls f(w).
func (f TaskFunc[T]) Poll(w *Waker) Poll[T] {
	return f(w)
}

// completion guards the poll-after-ready contract for tasks in this package.
type completion struct {
	done bool
}

func (c *completion) check() {
	if c.done {
		panic(ErrPolledAfterCompletion)
	}
}

func (c *completion) finish() {
	c.done = true
}
