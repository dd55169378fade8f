// Package mpsc provides ordered, unbounded channels with explicit endpoints.
//
// Unlike a built-in Go channel, each end can be dropped independently and the
// other end observes it: Recv reports ErrDisconnected once every Sender is
// closed and the buffer is empty, and Send reports ErrDisconnected once the
// Receiver is closed. Neither case panics.
//
//	tx, rx := mpsc.New[string]()
//	h := thread.Spawn(func() string {
//	    msg, err := rx.Recv()
//	    if err != nil {
//	        return ""
//	    }
//	    return msg
//	})
//	_ = tx.Send("Hello, world!")
//	tx.Close()
package mpsc
