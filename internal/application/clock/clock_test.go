package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_OneShot(t *testing.T) {
	c := New()
	calls := 0
	c.RequestFrame(func(float64) { calls++ })

	assert.Equal(t, 1, c.Pending())
	c.Tick(16)
	c.Tick(32)

	assert.Equal(t, 1, calls, "callback runs once per request")
	assert.Equal(t, 0, c.Pending())
}

func TestClock_PassesTimestamp(t *testing.T) {
	c := New()
	var got float64
	c.RequestFrame(func(ts float64) { got = ts })

	c.Tick(1234.5)
	assert.Equal(t, 1234.5, got)
}

func TestClock_RunsInArmingOrder(t *testing.T) {
	c := New()
	var order []int
	for i := 0; i < 3; i++ {
		c.RequestFrame(func(float64) { order = append(order, i) })
	}

	c.Tick(0)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestClock_RearmedLoop(t *testing.T) {
	c := New()
	frames := 0
	var loop func(float64)
	loop = func(float64) {
		frames++
		c.RequestFrame(loop)
	}
	c.RequestFrame(loop)

	for i := 0; i < 5; i++ {
		c.Tick(float64(i))
	}

	assert.Equal(t, 5, frames, "re-armed callback waits for the next tick")
	assert.Equal(t, 1, c.Pending())
}

func TestClock_Cancel(t *testing.T) {
	c := New()
	ran := false
	h := c.RequestFrame(func(float64) { ran = true })

	c.Cancel(h)
	assert.Equal(t, 0, c.Pending())

	c.Tick(0)
	assert.False(t, ran)
}

func TestClock_CancelIsIdempotent(t *testing.T) {
	c := New()
	runs := 0
	h := c.RequestFrame(func(float64) { runs++ })

	require.NotPanics(t, func() {
		c.Cancel(h)
		c.Cancel(h)
		c.Cancel(0)
		c.Cancel(999)
	})

	c.Tick(0)
	assert.Equal(t, 0, runs)

	// Cancelling a fired handle does not leak into later requests
	h2 := c.RequestFrame(func(float64) { runs++ })
	c.Tick(1)
	c.Cancel(h2)
	c.RequestFrame(func(float64) { runs++ })
	c.Tick(2)
	assert.Equal(t, 2, runs)
}

func TestClock_CancelDuringTick(t *testing.T) {
	c := New()
	ran := false

	var second Handle
	c.RequestFrame(func(float64) { c.Cancel(second) })
	second = c.RequestFrame(func(float64) { ran = true })

	c.Tick(0)
	assert.False(t, ran, "callback cancelled earlier in the same tick must not run")
}

func TestClock_CancelRearmedInsideTick(t *testing.T) {
	c := New()
	frames := 0
	var handle Handle
	var loop func(float64)
	loop = func(float64) {
		frames++
		handle = c.RequestFrame(loop)
	}
	handle = c.RequestFrame(loop)

	c.Tick(0)
	c.Cancel(handle)
	c.Tick(1)
	c.Tick(2)

	assert.Equal(t, 1, frames)
	assert.Equal(t, 0, c.Pending())
}

func TestFrameGate(t *testing.T) {
	tests := []struct {
		name   string
		fps    int
		ticks  []float64
		passes []bool
	}{
		{
			name:   "first tick always passes",
			fps:    60,
			ticks:  []float64{500},
			passes: []bool{true},
		},
		{
			name:   "faster ticks are throttled",
			fps:    60,
			ticks:  []float64{0, 8, 16, 17, 25, 34},
			passes: []bool{true, false, false, true, false, true},
		},
		{
			name:   "30fps",
			fps:    30,
			ticks:  []float64{0, 1000.0 / 60, 2000.0 / 60, 3000.0 / 60, 4000.0 / 60},
			passes: []bool{true, false, true, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewFrameGate(tt.fps)
			for i, ts := range tt.ticks {
				assert.Equal(t, tt.passes[i], g.Ready(ts), "tick %d at %v", i, ts)
			}
		})
	}
}

func TestFrameGate_DeterministicTimestamps(t *testing.T) {
	g := NewFrameGate(60)
	passed := 0
	for frame := 0; frame < 600; frame++ {
		if g.Ready(float64(frame) * 1000 / 60) {
			passed++
		}
	}
	assert.Equal(t, 600, passed, "ticks at exactly the target rate all pass")
}

func TestFrameGate_Reset(t *testing.T) {
	g := NewFrameGate(60)
	require.True(t, g.Ready(0))
	require.False(t, g.Ready(1))

	g.Reset()
	assert.True(t, g.Ready(2))
}
