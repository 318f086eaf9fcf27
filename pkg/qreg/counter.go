package qreg

import "sync/atomic"

// Counter is the process-wide, advisory gate counter. It is
// not part of any register invariant. The reference implementation keeps
// a single static counter; here it is an explicit value so tests running
// in parallel can each hold their own instead of racing on global state,
// while DefaultCounter preserves the "process-wide" default for callers
// that don't care.
type Counter struct {
	n atomic.Int64
}

// DefaultCounter is the counter every Register uses unless constructed
// with WithCounter.
var DefaultCounter = &Counter{}

// Add increases the counter by k and returns the new value. k must be
// non-negative; use Reset to zero the counter.
func (c *Counter) Add(k int64) int64 {
	if k < 0 {
		return c.Reset()
	}
	return c.n.Add(k)
}

// Reset zeroes the counter and returns 0, mirroring the reference
// implementation's "negative increment resets" convention.
func (c *Counter) Reset() int64 {
	c.n.Store(0)
	return 0
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.n.Load()
}
