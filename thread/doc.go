// Package thread runs closures on dedicated OS threads and hands back
// join-able handles.
//
// Spawn starts one worker. Pool spawns many and joins them together:
//
//	p := thread.NewPool[string](thread.WithLogger(logger))
//	for x := range 10 {
//	    p.Spawn(func() string { return fmt.Sprintf("Hello, world!: %d", x) })
//	}
//	lines, err := p.JoinAll()
//
// # Panics
//
// A worker that panics (or calls runtime.Goexit) never takes down the
// process or the joining goroutine. The panic is captured into a *PanicError
// together with the worker's stack and is reported by Join, Wait and JoinAll.
// errors.Is(err, ErrWorkerPanicked) matches any of them.
//
// # Configuration Options
//
//   - WithCPUPinning(enabled): pin each worker thread to a core (Linux only)
//   - WithStartRate(perSecond, burst): pace how fast workers begin running
//   - WithLogger(logger): log worker lifecycle with log/slog
//   - WithOnWorkerEnd(fn): hook called when each worker ends
package thread
