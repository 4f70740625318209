package id

import "sync/atomic"

// Sequence hands out saved-team identifiers.
type Sequence interface {
	Next() int64
}

// Counter is a monotonic in-process sequence. Values are never reused, so
// rapid successive saves cannot collide the way wall-clock ids can.
type Counter struct {
	last atomic.Int64
}

// NewCounter starts the sequence after start; the first Next returns start+1.
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.last.Store(start)
	return c
}

func (c *Counter) Next() int64 {
	return c.last.Add(1)
}
