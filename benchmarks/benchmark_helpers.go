// Package benchmarks compares the playground's building blocks with their
// closest built-in Go counterparts.
package benchmarks

import (
	"github.com/utkarsh5026/pollme/future"
)

// countdowns builds one countdown per entry of counts.
func countdowns(counts ...uint32) []future.Task[string] {
	tasks := make([]future.Task[string], len(counts))
	for i, n := range counts {
		tasks[i] = future.NewCountdown(n)
	}
	return tasks
}

// spread returns n counts cycling through 1..limit.
func spread(n int, limit uint32) []uint32 {
	counts := make([]uint32, n)
	for i := range counts {
		counts[i] = uint32(i)%limit + 1
	}
	return counts
}

// cpuBoundWork burns a predictable amount of CPU and returns a value derived
// from task so the compiler cannot drop the loop.
func cpuBoundWork(iterations, task int) int {
	result := 0
	for i := 0; i < iterations; i++ {
		result += i * task
	}
	return result
}
