package thread

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerPanicked matches every *PanicError through errors.Is.
	ErrWorkerPanicked = errors.New("thread: worker panicked")
)

// PanicError reports a worker that terminated abnormally, either by panicking
// or by calling runtime.Goexit.
type PanicError struct {
	ID     int64  // ID of the worker handle
	Value  any    // value passed to panic; nil for Goexit
	Stack  []byte // stack of the worker at the time of the panic
	Goexit bool   // worker called runtime.Goexit instead of returning
}

func (e *PanicError) Error() string {
	if e.Goexit {
		return fmt.Sprintf("worker %d exited via runtime.Goexit", e.ID)
	}
	return fmt.Sprintf("worker %d panic: %v\nstack trace:\n%s", e.ID, e.Value, e.Stack)
}

// Unwrap exposes ErrWorkerPanicked and, when the worker panicked with an
// error, that error.
func (e *PanicError) Unwrap() []error {
	errs := []error{ErrWorkerPanicked}
	if err, ok := e.Value.(error); ok {
		errs = append(errs, err)
	}
	return errs
}
