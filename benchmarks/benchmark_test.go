package benchmarks

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/utkarsh5026/pollme/future"
	"github.com/utkarsh5026/pollme/mpsc"
	"github.com/utkarsh5026/pollme/shared"
	"github.com/utkarsh5026/pollme/thread"
)

// =============================================================================
// Inline executor
// =============================================================================

func BenchmarkBlockOn_JoinAll(b *testing.B) {
	for _, size := range []int{2, 16, 128} {
		for _, mode := range []future.WakeMode{future.WakeRepoll, future.WakePark} {
			b.Run(fmt.Sprintf("tasks=%d/%s", size, mode), func(b *testing.B) {
				counts := spread(size, 32)
				b.ReportAllocs()
				for b.Loop() {
					future.BlockOn[[]string](future.JoinAll(countdowns(counts...)...), future.WithWakeMode(mode))
				}
			})
		}
	}
}

func BenchmarkBlockOn_Chain(b *testing.B) {
	add := func(a, c int) future.Task[int] { return future.Value(a + c) }
	b.ReportAllocs()
	for b.Loop() {
		t := future.Then(add(2, 3), func(x int) future.Task[int] {
			return future.Map(add(3, 4), func(y int) int { return x + y })
		})
		if future.BlockOn(t) != 12 {
			b.Fatal("wrong result")
		}
	}
}

// =============================================================================
// Channels
// =============================================================================

func BenchmarkChannel_Throughput(b *testing.B) {
	const messages = 1024

	b.Run("mpsc", func(b *testing.B) {
		for b.Loop() {
			tx, rx := mpsc.New[int]()
			go func() {
				defer tx.Close()
				for i := range messages {
					_ = tx.Send(i)
				}
			}()
			n := 0
			for range rx.All() {
				n++
			}
			if n != messages {
				b.Fatalf("expected %d messages, got %d", messages, n)
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		for b.Loop() {
			ch := make(chan int, messages)
			go func() {
				defer close(ch)
				for i := range messages {
					ch <- i
				}
			}()
			n := 0
			for range ch {
				n++
			}
			if n != messages {
				b.Fatalf("expected %d messages, got %d", messages, n)
			}
		}
	})
}

// =============================================================================
// Shared state
// =============================================================================

func BenchmarkCounters_Contention(b *testing.B) {
	b.Run("mutex", func(b *testing.B) {
		data := shared.NewCounters(8, 0)
		var next atomic.Int64
		b.RunParallel(func(pb *testing.PB) {
			slot := int(next.Add(1)) % 8
			for pb.Next() {
				_ = data.Add(slot, 1)
			}
		})
	})

	b.Run("atomic", func(b *testing.B) {
		var slots [8]atomic.Int64
		var next atomic.Int64
		b.RunParallel(func(pb *testing.PB) {
			slot := int(next.Add(1)) % 8
			for pb.Next() {
				slots[slot].Add(1)
			}
		})
	})
}

// =============================================================================
// Worker threads
// =============================================================================

func BenchmarkPool_SpawnJoin(b *testing.B) {
	for _, workers := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("workers=%d/pool", workers), func(b *testing.B) {
			for b.Loop() {
				p := thread.NewPool[int]()
				for i := range workers {
					p.Spawn(func() int { return cpuBoundWork(1000, i) })
				}
				if _, err := p.JoinAll(); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("workers=%d/goroutines", workers), func(b *testing.B) {
			for b.Loop() {
				var wg sync.WaitGroup
				results := make([]int, workers)
				for i := range workers {
					wg.Go(func() { results[i] = cpuBoundWork(1000, i) })
				}
				wg.Wait()
			}
		})
	}
}
