package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func run(a *Animator, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		a.Update(frame)
	}
}

func TestAnimator_To(t *testing.T) {
	a := NewAnimator()
	v := 0.0
	done := false

	a.Tween(To(&v, 1, Options{Duration: 0.4, Ease: Linear}), func() { done = true })

	a.Update(0.2)
	assert.InDelta(t, 0.5, v, 1e-4)
	assert.False(t, done)

	a.Update(0.2)
	assert.Equal(t, 1.0, v)
	assert.True(t, done)
	assert.Equal(t, 0, a.Active())
}

func TestAnimator_By(t *testing.T) {
	a := NewAnimator()
	x := 280.0

	a.Tween(By(&x, -15, Options{Duration: 0.2}), nil)
	x = 300 // start value is read on the first update

	run(a, 0.25)
	assert.Equal(t, 285.0, x)
}

func TestAnimator_Delay(t *testing.T) {
	a := NewAnimator()
	v := 1.0

	a.Tween(To(&v, 0, Options{Duration: 0.8, Delay: 0.5, Ease: Linear}), nil)

	a.Update(0.4)
	assert.Equal(t, 1.0, v, "nothing moves during the delay")

	a.Update(0.5)
	assert.InDelta(t, 0.5, v, 1e-4)

	a.Update(0.5)
	assert.Equal(t, 0.0, v)
}

func TestAnimator_MirrorRepeat(t *testing.T) {
	tests := []struct {
		name   string
		repeat int
		want   float64
	}{
		{"even plays end where they started", 5, 1},
		{"odd plays end at the target", 2, 0},
		{"single play", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator()
			opacity := 1.0
			calls := 0

			a.Tween(To(&opacity, 0, Options{Duration: 0.08, Repeat: tt.repeat, Mirror: true, Ease: Linear}), func() { calls++ })

			run(a, 0.08*float64(tt.repeat+1)+0.1)
			assert.Equal(t, tt.want, opacity)
			assert.Equal(t, 1, calls, "done fires once after all repeats")
		})
	}
}

func TestAnimator_MirrorMidway(t *testing.T) {
	a := NewAnimator()
	v := 0.0

	a.Tween(To(&v, 1, Options{Duration: 1, Repeat: 1, Mirror: true, Ease: Linear}), nil)

	a.Update(1.25)
	assert.InDelta(t, 0.75, v, 1e-4, "second play runs backwards")
}

func TestAnimator_Sequence(t *testing.T) {
	a := NewAnimator()
	x := 100.0
	done := false

	a.Sequence([]Step{
		By(&x, -15, Options{Duration: 0.2}),
		By(&x, 30, Options{Duration: 0.1}),
		By(&x, -15, Options{Duration: 0.2}),
	}, func() { done = true })

	a.Update(0.2)
	assert.Equal(t, 85.0, x)
	assert.False(t, done)

	run(a, 0.7)
	assert.Equal(t, 100.0, x, "lunge returns to its origin")
	assert.True(t, done)
}

func TestAnimator_EmptySequence(t *testing.T) {
	a := NewAnimator()
	done := false
	a.Sequence(nil, func() { done = true })
	assert.True(t, done)
}

func TestAnimator_CallbackStartsTween(t *testing.T) {
	a := NewAnimator()
	v := 0.0
	w := 0.0

	a.Tween(To(&v, 1, Options{Duration: 0.1}), func() {
		a.Tween(To(&w, 1, Options{Duration: 0.1}), nil)
	})

	run(a, 0.11)
	require.Equal(t, 1.0, v)
	assert.Equal(t, 1, a.Active())
	assert.True(t, a.Busy(&w))
	assert.False(t, a.Busy(&v))

	run(a, 0.2)
	assert.Equal(t, 1.0, w)
}

func TestAnimator_Clear(t *testing.T) {
	a := NewAnimator()
	v := 0.0
	called := false
	a.Tween(To(&v, 1, Options{Duration: 1}), func() { called = true })

	a.Clear()
	run(a, 2)

	assert.False(t, called)
	assert.Equal(t, 0.0, v)
}

func TestAnimator_ZeroDuration(t *testing.T) {
	a := NewAnimator()
	v := 0.0
	a.Tween(To(&v, 5, Options{}), nil)

	a.Update(frame)
	assert.Equal(t, 5.0, v)
}

func TestAnimator_SettleFinishesInPlace(t *testing.T) {
	a := NewAnimator()
	x := 800.0
	calls := 0

	a.Tween(By(&x, 10, Options{Duration: 0.08, Repeat: 5, Mirror: true}), func() { calls++ })
	run(a, 0.05)
	require.NotEqual(t, 800.0, x, "shake is mid-flight")

	a.Settle(&x)
	assert.Equal(t, 800.0, x, "an even number of mirrored plays rests at the start")
	assert.Equal(t, 1, calls)
	assert.False(t, a.Busy(&x))

	run(a, 1)
	assert.Equal(t, 1, calls, "a settled tween never fires again")
}

func TestAnimator_SettleSequence(t *testing.T) {
	a := NewAnimator()
	x := 100.0
	other := 0.0
	done := false

	a.Sequence([]Step{
		By(&x, -15, Options{Duration: 0.2}),
		By(&x, 30, Options{Duration: 0.1}),
		By(&x, -15, Options{Duration: 0.2}),
	}, func() {
		done = true
		a.Tween(To(&other, 1, Options{Duration: 0.3}), nil)
	})
	run(a, 0.1)

	a.Settle(&x)
	assert.Equal(t, 100.0, x, "every remaining step is applied")
	assert.True(t, done)
	assert.True(t, a.Busy(&other), "tweens on other fields keep running")
}

func TestAnimator_SettleUnstarted(t *testing.T) {
	a := NewAnimator()
	v := 1.0
	a.Tween(To(&v, 0, Options{Duration: 0.3, Delay: 1}), nil)

	a.Settle(&v)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0, a.Active())
}

func TestEases(t *testing.T) {
	for name, fn := range map[string]Ease{
		"linear":     Linear,
		"easeOut":    EaseOut,
		"easeInOut":  EaseInOut,
		"anticipate": Anticipate,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, fn(0, 0, 1, 1), 1e-6)
			assert.InDelta(t, 1, fn(1, 0, 1, 1), 1e-6)
		})
	}
	assert.Less(t, Anticipate(0.2, 0, 1, 1), float32(0))
}
