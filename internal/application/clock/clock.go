// Package clock provides a one-shot frame callback scheduler.
//
// Loops are written as callbacks that re-arm themselves each frame, so a loop
// stops simply by not re-arming or by being cancelled. Everything runs on the
// game's update goroutine; Clock is not safe for concurrent use.
package clock

import "math"

// epsilon absorbs float drift in timestamps derived from frame counts
const epsilon = 1e-6

// Handle identifies a pending frame request. The zero Handle is never issued.
type Handle uint64

type request struct {
	handle Handle
	fn     func(tsMs float64)
}

// Clock schedules callbacks for the next tick
type Clock struct {
	next      Handle
	pending   []request
	inflight  []request // not yet run in the current tick
	cancelled map[Handle]bool
}

// New creates an empty clock
func New() *Clock {
	return &Clock{cancelled: make(map[Handle]bool)}
}

// RequestFrame arms fn to run once on the next Tick
func (c *Clock) RequestFrame(fn func(tsMs float64)) Handle {
	c.next++
	c.pending = append(c.pending, request{handle: c.next, fn: fn})
	return c.next
}

// Cancel disarms a request that has not run yet. Cancelling a handle that
// already fired, was already cancelled, or was never issued does nothing.
func (c *Clock) Cancel(h Handle) {
	if contains(c.pending, h) || contains(c.inflight, h) {
		c.cancelled[h] = true
	}
}

// Tick runs every callback armed before this call, in arming order.
// Callbacks armed during the tick wait for the next one. A callback cancelled
// by an earlier callback in the same tick does not run.
func (c *Clock) Tick(tsMs float64) {
	batch := c.pending
	c.pending = nil

	for i, r := range batch {
		c.inflight = batch[i+1:]
		if c.cancelled[r.handle] {
			delete(c.cancelled, r.handle)
			continue
		}
		r.fn(tsMs)
	}
	c.inflight = nil
}

// Pending returns the number of armed, uncancelled requests
func (c *Clock) Pending() int {
	n := 0
	for _, r := range c.pending {
		if !c.cancelled[r.handle] {
			n++
		}
	}
	return n
}

func contains(reqs []request, h Handle) bool {
	for _, r := range reqs {
		if r.handle == h {
			return true
		}
	}
	return false
}

// FrameGate throttles a loop that is ticked faster than its target rate.
// A tick passes when at least one interval has elapsed since the last
// passing tick; the remainder carries over so the average rate holds.
type FrameGate struct {
	interval float64
	last     float64
	started  bool
}

// NewFrameGate creates a gate for the given frames per second
func NewFrameGate(fps int) *FrameGate {
	if fps <= 0 {
		fps = 60
	}
	return &FrameGate{interval: 1000 / float64(fps)}
}

// Ready reports whether the tick at tsMs should run
func (g *FrameGate) Ready(tsMs float64) bool {
	if !g.started {
		g.started = true
		g.last = tsMs
		return true
	}
	delta := tsMs - g.last
	if delta < g.interval-epsilon {
		return false
	}
	rem := math.Mod(delta, g.interval)
	if g.interval-rem < epsilon {
		rem = 0
	}
	g.last = tsMs - rem
	return true
}

// Reset makes the next tick pass unconditionally
func (g *FrameGate) Reset() {
	g.started = false
}
