package shared

// Counters is a fixed-size sequence of integers shared between workers.
// Every handle refers to the same slots; the slots are only read or written
// while holding the lock.
type Counters struct {
	cell *Arc[*Mutex[[]int]]
	size int
}

// NewCounters returns the first handle to size slots, each set to initial.
func NewCounters(size, initial int) *Counters {
	slots := make([]int, size)
	for i := range slots {
		slots[i] = initial
	}
	return &Counters{cell: NewArc(NewMutex(slots)), size: size}
}

// Clone returns another handle to the same slots, for handing to a worker.
func (c *Counters) Clone() *Counters {
	return &Counters{cell: c.cell.Clone(), size: c.size}
}

// Release drops this handle; see Arc.Release.
func (c *Counters) Release() bool {
	return c.cell.Release()
}

// Refs returns the number of live handles.
func (c *Counters) Refs() int64 {
	return c.cell.StrongCount()
}

// Len returns the number of slots.
func (c *Counters) Len() int {
	return c.size
}

// Add adds delta to slot i under the lock.
func (c *Counters) Add(i, delta int) error {
	if i < 0 || i >= c.size {
		return indexError(i, c.size)
	}
	return c.cell.Get().With(func(slots *[]int) {
		(*slots)[i] += delta
	})
}

// Update runs fn on all slots under the lock. A panic in fn poisons the
// counters and propagates to the caller.
func (c *Counters) Update(fn func(slots []int)) error {
	return c.cell.Get().With(func(slots *[]int) {
		fn(*slots)
	})
}

// Snapshot copies the slots under the lock. When the lock is poisoned the
// copy is still returned, together with an error matching ErrPoisoned.
func (c *Counters) Snapshot() ([]int, error) {
	g, err := c.cell.Get().Lock()
	defer g.Unlock()
	return append([]int(nil), *g.Value()...), err
}

// Poisoned reports whether a holder panicked while updating the counters.
func (c *Counters) Poisoned() bool {
	return c.cell.Get().IsPoisoned()
}
