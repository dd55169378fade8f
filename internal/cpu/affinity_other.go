//go:build !linux

package cpu

import "errors"

// ErrUnsupported is returned by Pin on platforms without thread affinity.
var ErrUnsupported = errors.New("cpu: thread pinning is not supported on this platform")

// Pin is a no-op outside Linux.
func Pin(core int) (int, error) {
	return 0, ErrUnsupported
}

// Supported reports whether Pin can change thread affinity on this platform.
func Supported() bool {
	return false
}
