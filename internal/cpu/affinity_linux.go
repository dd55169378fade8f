//go:build linux

package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin restricts the calling OS thread to a single CPU core.
// The caller must have called runtime.LockOSThread first, otherwise the
// goroutine may migrate to a thread that was never pinned.
//
// core wraps around the number of logical CPUs.
func Pin(core int) (int, error) {
	core = normalize(core)

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	if err := unix.SchedSetaffinity(0, &mask); err != nil { // 0 = current thread
		return 0, fmt.Errorf("pin thread to core %d: %w", core, err)
	}
	return core, nil
}

// Supported reports whether Pin can change thread affinity on this platform.
func Supported() bool {
	return true
}

func normalize(core int) int {
	n := runtime.NumCPU()
	if core < 0 {
		core = -core
	}
	return core % n
}
