package feature

import (
	"math"
	"sync/atomic"
)

// Stamp is a modification stamp. Stamps are totally ordered and strictly
// increase with every mutation made through the same Clock.
//
// An entity A is stale with respect to B when A.Stamp() < B.Stamp().
type Stamp uint64

// Clock is a monotonic logical clock used to stamp mutations.
//
// Every stateful entity stores the value returned by its last Touch. Comparing
// stored stamps answers "was X modified after Y was derived from it" without
// tracking dependencies explicitly.
//
// Clock is safe for concurrent use. The engine itself is single-threaded, but
// features that share DefaultClock may live on different goroutines.
type Clock struct {
	seq atomic.Uint64
}

// DefaultClock is the process-wide clock used when Options.Clock is nil.
var DefaultClock = NewClock()

// NewClock creates a clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current stamp without advancing the clock.
func (c *Clock) Now() Stamp {
	return Stamp(c.seq.Load())
}

// Touch advances the clock and returns the new stamp.
//
// The counter saturating is treated as fatal rather than wrapping around:
// a wrapped stamp would make stale state look fresh.
func (c *Clock) Touch() Stamp {
	next := c.seq.Add(1)
	if next == 0 || next == math.MaxUint64 {
		panic("feature: modification clock saturated")
	}
	return Stamp(next)
}

// Timestamp records when an entity was last modified.
//
// The zero Timestamp is older than anything stamped by a clock.
type Timestamp struct {
	clock *Clock
	stamp Stamp
}

// NewTimestamp creates an unmodified timestamp bound to clock.
// A nil clock means DefaultClock.
func NewTimestamp(clock *Clock) Timestamp {
	if clock == nil {
		clock = DefaultClock
	}
	return Timestamp{clock: clock}
}

// Modified touches the clock and records the new stamp.
func (t *Timestamp) Modified() Stamp {
	if t.clock == nil {
		t.clock = DefaultClock
	}
	t.stamp = t.clock.Touch()
	return t.stamp
}

// Stamp returns the stamp recorded by the last Modified call, or 0.
func (t *Timestamp) Stamp() Stamp {
	return t.stamp
}
