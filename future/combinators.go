package future

// Value returns a Task that is ready on its first poll with v.
func Value[T any](v T) Task[T] {
	return Lazy(func() T { return v })
}

// Lazy returns a Task that runs fn on its first poll and completes with its
// result. State captured by fn is owned by the task from then on.
func Lazy[T any](fn func() T) Task[T] {
	var c completion
	return TaskFunc[T](func(*Waker) Poll[T] {
		c.check()
		c.finish()
		return Ready(fn())
	})
}

// Then sequences two tasks: once t completes, next is called with its value
// and the task it returns is driven to completion.
//
// The first stage's Ready is consumed inside the same poll, so a chain of
// tasks that are ready immediately completes in a single poll.
func Then[T, U any](t Task[T], next func(T) Task[U]) Task[U] {
	var (
		second Task[U]
		c      completion
	)
	return TaskFunc[U](func(w *Waker) Poll[U] {
		c.check()
		if second == nil {
			v, ok := t.Poll(w).Value()
			if !ok {
				return Pending[U]()
			}
			second = next(v)
		}

		p := second.Poll(w)
		if p.IsReady() {
			c.finish()
		}
		return p
	})
}

// Map transforms the value of t once it completes.
func Map[T, U any](t Task[T], fn func(T) U) Task[U] {
	var c completion
	return TaskFunc[U](func(w *Waker) Poll[U] {
		c.check()
		v, ok := t.Poll(w).Value()
		if !ok {
			return Pending[U]()
		}
		c.finish()
		return Ready(fn(v))
	})
}
