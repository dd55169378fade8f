package thread

import (
	"log/slog"

	"golang.org/x/time/rate"
)

// PoolOption is a functional option for configuring a Pool.
type PoolOption func(*poolConfig)

type poolConfig struct {
	pinning     bool
	startLimit  *rate.Limiter
	logger      *slog.Logger
	onWorkerEnd func(id int64, err error)
}

// WithCPUPinning pins every worker thread to one CPU core, chosen round-robin
// by worker ID. Pinning is best effort: failures are logged and the worker
// runs unpinned. Has no effect outside Linux.
func WithCPUPinning(enabled bool) PoolOption {
	return func(cfg *poolConfig) {
		cfg.pinning = enabled
	}
}

// WithStartRate limits how fast workers begin running their closures.
// perSecond is the sustained rate and burst the number of workers that may
// start at once. Spawn itself never waits; the worker does.
//
// Example:
//
//	WithStartRate(100, 10) // 100 workers/sec, 10 at a time
func WithStartRate(perSecond float64, burst int) PoolOption {
	return func(cfg *poolConfig) {
		if perSecond > 0 && burst > 0 {
			cfg.startLimit = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithLogger sets the logger for worker lifecycle events.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(cfg *poolConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOnWorkerEnd registers a hook called on the worker's thread once its
// closure has ended, before the handle can be joined. err is a *PanicError
// when the worker terminated abnormally.
func WithOnWorkerEnd(fn func(id int64, err error)) PoolOption {
	return func(cfg *poolConfig) {
		cfg.onWorkerEnd = fn
	}
}

func createConfig(opts ...PoolOption) *poolConfig {
	cfg := &poolConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
