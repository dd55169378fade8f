package future

// Join is a Task that completes once every wrapped task has completed. Its
// result holds the member values in input order, regardless of the order in
// which the members finished.
type Join[T any] struct {
	tasks     []Task[T]
	results   []*T
	remaining int
	completion
}

// JoinAll wraps tasks into a single Task.
//
// Each poll of the returned Join polls every member that is still pending
// exactly once, in input order, handing it the same waker. A member that
// becomes ready is never polled again.
func JoinAll[T any](tasks ...Task[T]) *Join[T] {
	return &Join[T]{
		tasks:     tasks,
		results:   make([]*T, len(tasks)),
		remaining: len(tasks),
	}
}

// Len returns the number of member tasks.
func (j *Join[T]) Len() int {
	return len(j.tasks)
}

// Pending returns the number of members that have not completed yet.
func (j *Join[T]) Pending() int {
	return j.remaining
}

// Poll advances every unfinished member once.
func (j *Join[T]) Poll(w *Waker) Poll[[]T] {
	j.check()

	for i, t := range j.tasks {
		if j.results[i] != nil {
			continue
		}
		if v, ok := t.Poll(w).Value(); ok {
			j.results[i] = &v
			j.tasks[i] = nil
			j.remaining--
		}
	}

	if j.remaining > 0 {
		return Pending[[]T]()
	}

	out := make([]T, len(j.results))
	for i, r := range j.results {
		out[i] = *r
	}
	j.results = nil
	j.finish()
	return Ready(out)
}
