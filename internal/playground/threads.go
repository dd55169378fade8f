package playground

import (
	"errors"
	"fmt"

	"github.com/utkarsh5026/pollme/shared"
	"github.com/utkarsh5026/pollme/thread"
)

// ThreadsReport is the outcome of HelloThreads.
type ThreadsReport struct {
	Greetings []string // one per pooled worker, in spawn order
}

// HelloThreads spawns a single worker and joins it, then spawns n workers
// that each own their index and joins them all.
func (p *Playground) HelloThreads(n int) (ThreadsReport, error) {
	p.section("threads")

	h := thread.Spawn(func() string {
		p.printf("Hello, world!\n")
		return "Hello, world!"
	})
	if _, err := h.Join(); err != nil {
		return ThreadsReport{}, fmt.Errorf("join greeter: %w", err)
	}
	p.printf("join: ok\n")

	pool := newPool[string](p)
	for x := range n {
		pool.Spawn(func() string {
			line := fmt.Sprintf("Hello, world!: %d", x)
			p.printf("%s\n", line)
			return line
		})
	}

	greetings, err := pool.JoinAll()
	if err != nil {
		return ThreadsReport{Greetings: greetings}, fmt.Errorf("join workers: %w", err)
	}
	return ThreadsReport{Greetings: greetings}, nil
}

// CountersReport is the outcome of SharedCounters.
type CountersReport struct {
	Slots []int
}

// SharedCounters gives each of n workers its own handle to one shared set of
// counters; worker x increments slot x once under the lock.
func (p *Playground) SharedCounters(n, initial int) (CountersReport, error) {
	p.section("shared state")

	data := shared.NewCounters(n, initial)
	defer data.Release()

	pool := newPool[error](p)
	for x := range n {
		ref := data.Clone()
		pool.Spawn(func() error {
			defer ref.Release()
			return ref.Add(x, 1)
		})
	}

	addErrs, panicErr := pool.JoinAll()
	if err := errors.Join(append(addErrs, panicErr)...); err != nil {
		return CountersReport{}, fmt.Errorf("update counters: %w", err)
	}

	slots, err := data.Snapshot()
	if err != nil {
		return CountersReport{Slots: slots}, fmt.Errorf("snapshot counters: %w", err)
	}
	p.printf("data = %v\n", slots)
	return CountersReport{Slots: slots}, nil
}

// PoisonReport is the outcome of PoisonDemo.
type PoisonReport struct {
	WorkerErr error // how the lock holder terminated
	AddErr    error // what the next acquirer observed
	Slots     []int // state left behind by the holder
}

// ErrNotPoisoned means the lock was handed out clean after its holder died.
var ErrNotPoisoned = errors.New("lock was not poisoned after holder panicked")

// PoisonDemo lets a worker panic halfway through an update while it holds the
// counters' lock and shows that the next acquirer is told about it.
func (p *Playground) PoisonDemo(n, initial int) (PoisonReport, error) {
	p.section("lock poisoning")

	data := shared.NewCounters(n, initial)
	defer data.Release()

	ref := data.Clone()
	h := thread.Spawn(func() struct{} {
		defer ref.Release()
		_ = ref.Update(func(slots []int) {
			slots[0] += 100
			panic("worker died while holding the lock")
		})
		return struct{}{}
	})

	var report PoisonReport
	_, report.WorkerErr = h.Join()
	if report.WorkerErr == nil {
		return report, errors.New("expected the lock holder to panic")
	}
	p.logger.Info("lock holder terminated abnormally", "error", report.WorkerErr)
	p.printf("worker: %v\n", firstLine(report.WorkerErr))

	report.AddErr = data.Add(n-1, 1)
	if !errors.Is(report.AddErr, shared.ErrPoisoned) {
		return report, ErrNotPoisoned
	}
	p.printf("next acquirer: %v\n", report.AddErr)

	report.Slots, _ = data.Snapshot()
	p.printf("data = %v (possibly inconsistent)\n", report.Slots)
	return report, nil
}

func firstLine(err error) string {
	s := err.Error()
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
