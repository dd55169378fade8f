package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrPoisoned is reported to an acquirer when a previous holder of the
	// lock terminated abnormally while holding it.
	ErrPoisoned = errors.New("shared: lock poisoned by a panicking holder")
	// ErrWouldBlock is returned by TryLock when the lock is held.
	ErrWouldBlock = errors.New("shared: lock is held")
	// ErrReleased is the panic value for using an Arc after Release.
	ErrReleased = errors.New("shared: arc already released")
	// ErrIndexOutOfRange is returned for a counter slot that does not exist.
	ErrIndexOutOfRange = errors.New("shared: counter index out of range")
)

// PoisonError is returned together with a held Guard when the lock was
// poisoned. The protected value is still reachable through Guard, but it may
// reflect a half-finished update.
type PoisonError[T any] struct {
	guard *Guard[T]
}

func (e *PoisonError[T]) Error() string {
	return ErrPoisoned.Error()
}

// Is makes errors.Is(err, ErrPoisoned) true.
func (e *PoisonError[T]) Is(target error) bool {
	return target == ErrPoisoned
}

// Guard returns the guard that was acquired despite the poisoning.
func (e *PoisonError[T]) Guard() *Guard[T] {
	return e.guard
}

func indexError(i, n int) error {
	return fmt.Errorf("slot %d of %d: %w", i, n, ErrIndexOutOfRange)
}
