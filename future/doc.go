// Package future provides a minimal poll-based task model and an inline
// executor that drives tasks on the calling goroutine.
//
// A Task advances one step per call to Poll and reports either Pending or
// Ready. Tasks never block; instead, a Pending task calls Wake on the Waker it
// was handed to ask for another poll.
//
// # Basic Usage
//
//	cd := future.NewCountdown(10, future.WithOutput(os.Stdout))
//	msg := future.BlockOn[string](cd) // prints 10..1, returns "Zero!!!"
//
// # Joining Tasks
//
// JoinAll runs several tasks to completion together. Each outer poll polls
// every unfinished member once, in input order, and the result keeps input
// order:
//
//	j := future.JoinAll[string](future.NewCountdown(10), future.NewCountdown(20))
//	res := future.BlockOn[[]string](j)
//
// # Wake Modes
//
// BlockOn supports two disciplines:
//
//   - WakeRepoll: re-poll immediately after Pending (the default)
//   - WakePark: park until the task wakes its Waker
//
// WakeRepoll spins a CPU for as long as the task is pending. WakePark costs a
// channel handoff per round but lets tasks be woken from other goroutines.
//
// # Chaining
//
// Value, Lazy, Then and Map build sequential computations out of smaller
// tasks:
//
//	add := func(a, b int) future.Task[int] { return future.Value(a + b) }
//	sum := future.Then(add(2, 3), func(x int) future.Task[int] {
//	    return future.Map(add(3, 4), func(y int) int { return x + y })
//	})
//
// Polling any task from this package after it returned Ready panics with
// ErrPolledAfterCompletion.
package future
