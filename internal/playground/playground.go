// Package playground composes the futures, thread, shared-state and channel
// building blocks into runnable scenarios.
package playground

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
	"github.com/utkarsh5026/pollme/thread"
)

// Option configures a Playground.
type Option func(*Playground)

// WithLogger sets the structured logger. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Playground) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPoolOptions passes options to every thread pool a scenario creates.
func WithPoolOptions(opts ...thread.PoolOption) Option {
	return func(p *Playground) {
		p.poolOpts = append(p.poolOpts, opts...)
	}
}

// WithWorkerDone registers a hook called whenever a pooled worker finishes.
func WithWorkerDone(fn func()) Option {
	return func(p *Playground) {
		p.workerDone = fn
	}
}

// Playground runs scenarios and prints what they do.
type Playground struct {
	out        io.Writer
	logger     *slog.Logger
	poolOpts   []thread.PoolOption
	workerDone func()
	heading    *color.Color
}

// New returns a Playground writing to out. Writes from concurrent workers are
// serialized, so out need not be safe for concurrent use.
func New(out io.Writer, opts ...Option) *Playground {
	p := &Playground{
		out:     &lockedWriter{w: out},
		logger:  slog.New(slog.DiscardHandler),
		heading: color.New(color.Bold, color.FgCyan),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Playground) section(title string) {
	p.heading.Fprintf(p.out, "━━━ %s ━━━\n", title)
}

func (p *Playground) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func newPool[T any](p *Playground) *thread.Pool[T] {
	opts := append([]thread.PoolOption{thread.WithLogger(p.logger)}, p.poolOpts...)
	if p.workerDone != nil {
		done := p.workerDone
		opts = append(opts, thread.WithOnWorkerEnd(func(int64, error) { done() }))
	}
	return thread.NewPool[T](opts...)
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(b)
}
