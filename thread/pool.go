package thread

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/utkarsh5026/pollme/internal/cpu"
	"golang.org/x/sync/errgroup"
)

// Pool spawns workers on dedicated OS threads and waits for them.
//
// Every Spawn starts a new thread; nothing is reused or queued. The pool only
// keeps the handles so that the caller can join all of them at once.
//
// Type parameters:
//   - T: The result type produced by each worker
type Pool[T any] struct {
	config  *poolConfig
	mu      sync.Mutex
	handles []*Handle[T]
	group   errgroup.Group
}

// NewPool creates an empty pool with the given options.
//
// Example:
//
//	p := thread.NewPool[int](thread.WithCPUPinning(true))
//	for i := range 10 {
//	    p.Spawn(func() int { return i * i })
//	}
//	squares, err := p.JoinAll()
func NewPool[T any](opts ...PoolOption) *Pool[T] {
	return &Pool[T]{config: createConfig(opts...)}
}

// Spawn starts fn on a new worker thread and returns its handle. Handles are
// numbered from 0 in spawn order.
//
// Spawn is safe for concurrent use, but must not race with Wait or JoinAll.
func (p *Pool[T]) Spawn(fn func() T) *Handle[T] {
	p.mu.Lock()
	h := newHandle[T](int64(len(p.handles)))
	p.handles = append(p.handles, h)
	p.mu.Unlock()

	p.group.Go(func() error {
		runtime.LockOSThread()
		p.prepare(h.id)
		p.config.logger.Debug("worker started", "id", h.id)
		h.run(fn, p.finish)
		return h.err
	})

	return h
}

// prepare applies per-thread settings before the worker's closure runs.
func (p *Pool[T]) prepare(id int64) {
	if p.config.startLimit != nil {
		if err := p.config.startLimit.Wait(context.Background()); err != nil {
			p.config.logger.Warn("start rate limiter", "id", id, "error", err)
		}
	}

	if p.config.pinning && cpu.Supported() {
		core, err := cpu.Pin(int(id))
		if err != nil {
			p.config.logger.Warn("cpu pinning failed", "id", id, "error", err)
			return
		}
		p.config.logger.Debug("worker pinned", "id", id, "core", core)
	}
}

// finish reports the outcome of a worker. It runs on the worker's thread
// before the handle's Join unblocks.
func (p *Pool[T]) finish(h *Handle[T]) {
	if h.err != nil {
		p.config.logger.Warn("worker terminated abnormally", "id", h.id, "error", h.err)
	} else {
		p.config.logger.Debug("worker finished", "id", h.id)
	}
	if p.config.onWorkerEnd != nil {
		p.config.onWorkerEnd(h.id, h.err)
	}
}

// Len returns the number of workers spawned so far.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handles)
}

// Handles returns the handles of every spawned worker in spawn order.
func (p *Pool[T]) Handles() []*Handle[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Handle[T](nil), p.handles...)
}

// Wait blocks until every spawned worker has finished and returns the first
// abnormal termination observed, or nil.
func (p *Pool[T]) Wait() error {
	if err := p.group.Wait(); err != nil {
		return err
	}

	// a worker that calls runtime.Goexit never returns its error to the group
	for _, h := range p.Handles() {
		if _, err := h.Join(); err != nil {
			return err
		}
	}
	return nil
}

// JoinAll joins every worker in spawn order. The result slice is index-aligned
// with the handles; a worker that panicked leaves the zero value in its slot.
// All abnormal terminations are returned together via errors.Join.
func (p *Pool[T]) JoinAll() ([]T, error) {
	handles := p.Handles()
	results := make([]T, len(handles))
	var errs []error

	for i, h := range handles {
		v, err := h.Join()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results[i] = v
	}

	return results, errors.Join(errs...)
}
