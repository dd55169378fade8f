package future

import (
	"fmt"
	"io"
)

// CountdownDone is the value a Countdown completes with.
const CountdownDone = "Zero!!!"

// CountdownOption configures a Countdown.
type CountdownOption func(*Countdown)

// WithObserver registers fn to receive the counter value seen by every
// Pending poll, before it is decremented.
func WithObserver(fn func(remaining uint32)) CountdownOption {
	return func(c *Countdown) {
		c.observe = fn
	}
}

// WithOutput prints each observed counter value to w, one per line.
func WithOutput(w io.Writer) CountdownOption {
	return func(c *Countdown) {
		c.out = w
	}
}

// Countdown is a Task that returns Pending once per remaining tick and then
// completes with CountdownDone. Every Pending poll wakes its own waker, so it
// is always immediately ready to be polled again.
type Countdown struct {
	remaining uint32
	observe   func(uint32)
	out       io.Writer
	completion
}

// NewCountdown returns a Countdown that needs n+1 polls to complete.
func NewCountdown(n uint32, opts ...CountdownOption) *Countdown {
	c := &Countdown{remaining: n}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Remaining returns the number of Pending polls left.
func (c *Countdown) Remaining() uint32 {
	return c.remaining
}

// Poll advances the countdown by one tick.
func (c *Countdown) Poll(w *Waker) Poll[string] {
	c.check()

	if c.remaining == 0 {
		c.finish()
		return Ready(CountdownDone)
	}

	if c.observe != nil {
		c.observe(c.remaining)
	}
	if c.out != nil {
		fmt.Fprintln(c.out, c.remaining)
	}
	c.remaining--
	w.Wake()
	return Pending[string]()
}
