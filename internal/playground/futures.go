package playground

import (
	"github.com/utkarsh5026/pollme/future"
)

// CountdownReport is the outcome of Countdowns.
type CountdownReport struct {
	Results []string
	Polls   int // outer polls of the join
}

// Countdowns joins one countdown per entry of counts and drives the join on
// the calling goroutine.
func (p *Playground) Countdowns(counts []uint32, mode future.WakeMode) CountdownReport {
	p.section("futures")

	tasks := make([]future.Task[string], len(counts))
	for i, n := range counts {
		tasks[i] = future.NewCountdown(n, future.WithObserver(func(v uint32) {
			p.printf("[%d] %d\n", i, v)
		}))
	}

	var report CountdownReport
	report.Results = future.BlockOn[[]string](
		future.JoinAll(tasks...),
		future.WithWakeMode(mode),
		future.WithLogger(p.logger),
		future.WithOnPoll(func(round int, ready bool) { report.Polls = round }),
	)

	for i, s := range report.Results {
		p.printf("%d: %s\n", i, s)
	}
	return report
}

// ChainsReport is the outcome of Chains.
type ChainsReport struct {
	Sum        int
	Calculated int
	Moved      string
}

func asyncAdd(left, right int) future.Task[int] {
	return future.Value(left + right)
}

// Chains runs sequential compositions of tasks: three awaited additions
// summed, two awaited additions with printed intermediates, and a task that
// owns a value captured from its creator.
func (p *Playground) Chains(mode future.WakeMode) ChainsReport {
	p.section("chained futures")

	opts := []future.ExecutorOption{future.WithWakeMode(mode), future.WithLogger(p.logger)}

	sum := future.Then(asyncAdd(2, 3), func(a int) future.Task[int] {
		return future.Then(asyncAdd(3, 4), func(b int) future.Task[int] {
			return future.Map(asyncAdd(4, 5), func(c int) int {
				result := a + b + c
				p.printf("%d\n", result)
				return result
			})
		})
	})

	printed := func(t future.Task[int]) future.Task[int] {
		return future.Map(t, func(v int) int {
			p.printf("%d\n", v)
			return v
		})
	}
	calculate := future.Then(printed(asyncAdd(2, 3)), func(a int) future.Task[int] {
		return future.Then(printed(asyncAdd(3, 4)), func(b int) future.Task[int] {
			return asyncAdd(a, b)
		})
	})

	outside := "this is outside"
	moved := future.Lazy(func() string {
		p.printf("%s\n", outside)
		return outside
	})

	return ChainsReport{
		Sum:        future.BlockOn(sum, opts...),
		Calculated: future.BlockOn(calculate, opts...),
		Moved:      future.BlockOn(moved, opts...),
	}
}
