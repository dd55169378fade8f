package future

import "log/slog"

// WakeMode selects how the inline executor reacts to a Pending poll.
type WakeMode int

const (
	// WakeRepoll polls again immediately after Pending. Tasks are expected to
	// have requested the re-poll themselves; the executor does not wait for it.
	WakeRepoll WakeMode = iota
	// WakePark parks the calling goroutine after Pending until the task's
	// waker is woken. No CPU is spent while the task is idle, but a task that
	// returns Pending without ever waking parks its caller forever.
	WakePark
)

func (m WakeMode) String() string {
	switch m {
	case WakePark:
		return "park"
	default:
		return "repoll"
	}
}

// ExecutorOption is a functional option for configuring BlockOn.
type ExecutorOption func(*executorConfig)

type executorConfig struct {
	mode   WakeMode
	logger *slog.Logger
	onPoll func(round int, ready bool)
}

// WithWakeMode sets the wake discipline. Defaults to WakeRepoll.
func WithWakeMode(mode WakeMode) ExecutorOption {
	return func(cfg *executorConfig) {
		cfg.mode = mode
	}
}

// WithLogger sets the logger used to trace poll rounds at debug level.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(cfg *executorConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOnPoll registers a hook called after every poll with the 1-based round
// number and whether that poll returned Ready.
func WithOnPoll(fn func(round int, ready bool)) ExecutorOption {
	return func(cfg *executorConfig) {
		cfg.onPoll = fn
	}
}

// BlockOn drives t to completion on the calling goroutine and returns its
// value.
//
// There is no cancellation and no detection of tasks that never complete: such
// a task makes BlockOn loop (WakeRepoll) or park (WakePark) forever.
//
// Example:
//
//	msg := future.BlockOn[string](future.NewCountdown(3))
//	// msg == "Zero!!!"
func BlockOn[T any](t Task[T], opts ...ExecutorOption) T {
	cfg := &executorConfig{
		mode:   WakeRepoll,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	w := NewWaker()
	for round := 1; ; round++ {
		p := t.Poll(w)
		if cfg.onPoll != nil {
			cfg.onPoll(round, p.IsReady())
		}

		if v, ok := p.Value(); ok {
			cfg.logger.Debug("task ready", "polls", round, "mode", cfg.mode.String())
			return v
		}

		cfg.logger.Debug("task pending", "round", round, "mode", cfg.mode.String())
		if cfg.mode == WakePark {
			w.park()
		} else {
			// drop the wake so it cannot leak into the next round
			w.take()
		}
	}
}
