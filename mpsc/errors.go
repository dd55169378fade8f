package mpsc

import "errors"

var (
	// ErrDisconnected is returned by Send when the receiver is gone, and by
	// Recv when every sender is gone and nothing is buffered.
	ErrDisconnected = errors.New("mpsc: channel disconnected")
	// ErrEmpty is returned by TryRecv when nothing is buffered but senders
	// remain.
	ErrEmpty = errors.New("mpsc: channel empty")
	// ErrClosed is returned when an endpoint is used after its own Close.
	ErrClosed = errors.New("mpsc: endpoint closed")
)

// SendError hands back a value that could not be delivered because the
// receiver is gone.
type SendError[T any] struct {
	Value T
}

func (e *SendError[T]) Error() string {
	return "mpsc: send on disconnected channel"
}

// Is makes errors.Is(err, ErrDisconnected) true.
func (e *SendError[T]) Is(target error) bool {
	return target == ErrDisconnected
}
