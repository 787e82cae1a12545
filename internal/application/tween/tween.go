// Package tween animates float fields over time.
//
// A Step drives one *float64 from its value at start time to a target,
// optionally delayed, repeated and mirrored. Each play is a gween tween; the
// Animator advances every live step from the game's update loop and fires
// completion callbacks after the whole pass, so callbacks may freely start
// new tweens.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ease is a gween easing function
type Ease = ease.TweenFunc

// Eases used by the game
var (
	Linear     Ease = ease.Linear
	EaseOut    Ease = ease.OutQuad
	EaseInOut  Ease = ease.InOutSine
	Anticipate Ease = ease.InBack
)

// Options control timing. Durations are in seconds.
type Options struct {
	Duration float64
	Delay    float64
	// Repeat is the number of extra plays after the first
	Repeat int
	// Mirror reverses direction on every other play
	Mirror bool
	Ease   Ease
}

// Step animates Target towards Value. When Relative is set the target is the
// start value plus Value; the start value is read when the step begins, after
// its delay.
type Step struct {
	Target   *float64
	Value    float64
	Relative bool
	Options
}

// To returns a step to an absolute value
func To(target *float64, value float64, opts Options) Step {
	return Step{Target: target, Value: value, Options: opts}
}

// By returns a step that moves by delta
func By(target *float64, delta float64, opts Options) Step {
	return Step{Target: target, Value: delta, Relative: true, Options: opts}
}

type tween struct {
	step    Step
	done    func()
	elapsed float64
	started bool
	from    float64
	to      float64

	forward  *gween.Tween
	backward *gween.Tween
}

func (tw *tween) plays() int {
	if tw.step.Repeat < 0 {
		return 1
	}
	return tw.step.Repeat + 1
}

// begin captures the start value and builds the gween plays
func (tw *tween) begin() {
	tw.started = true
	tw.from = *tw.step.Target
	tw.to = tw.step.Value
	if tw.step.Relative {
		tw.to = tw.from + tw.step.Value
	}

	fn := tw.step.Ease
	if fn == nil {
		fn = EaseOut
	}
	d := float32(tw.step.Duration)
	tw.forward = gween.New(float32(tw.from), float32(tw.to), d, fn)
	tw.backward = gween.New(float32(tw.to), float32(tw.from), d, fn)
}

// advance moves the tween forward and reports whether it finished
func (tw *tween) advance(dt float64) bool {
	tw.elapsed += dt
	if tw.elapsed < tw.step.Delay {
		return false
	}
	if !tw.started {
		tw.begin()
	}

	d := tw.step.Duration
	t := tw.elapsed - tw.step.Delay
	if d <= 0 || t >= d*float64(tw.plays()) {
		*tw.step.Target = tw.final()
		return true
	}

	cycle := int(t / d)
	play := tw.forward
	if tw.step.Mirror && cycle%2 == 1 {
		play = tw.backward
	}
	v, _ := play.Set(float32(t - float64(cycle)*d))
	*tw.step.Target = float64(v)
	return false
}

// final is the exact resting value; gween works in float32
func (tw *tween) final() float64 {
	if tw.step.Mirror && tw.plays()%2 == 0 {
		return tw.from
	}
	return tw.to
}

// Animator owns the live tweens
type Animator struct {
	active []*tween
}

// NewAnimator creates an idle animator
func NewAnimator() *Animator {
	return &Animator{}
}

// Tween starts step. done, if not nil, runs once after the step finishes.
func (a *Animator) Tween(step Step, done func()) {
	if step.Target == nil {
		if done != nil {
			done()
		}
		return
	}
	a.active = append(a.active, &tween{step: step, done: done})
}

// Sequence runs steps one after another and calls done after the last
func (a *Animator) Sequence(steps []Step, done func()) {
	if len(steps) == 0 {
		if done != nil {
			done()
		}
		return
	}
	a.Tween(steps[0], func() {
		a.Sequence(steps[1:], done)
	})
}

// Update advances every tween by dt seconds
func (a *Animator) Update(dt float64) {
	if len(a.active) == 0 {
		return
	}

	var finished []func()
	live := a.active[:0]
	for _, tw := range a.active {
		if tw.advance(dt) {
			if tw.done != nil {
				finished = append(finished, tw.done)
			}
			continue
		}
		live = append(live, tw)
	}
	// Clear the tail so finished tweens can be collected
	for i := len(live); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = live

	for _, fn := range finished {
		fn()
	}
}

// Settle finishes every tween on target at once, oldest first, leaving
// target at its resting value. Callbacks run as if the tweens had completed;
// anything they start on target is settled too.
func (a *Animator) Settle(target *float64) {
	for a.Busy(target) {
		i := 0
		for a.active[i].step.Target != target {
			i++
		}
		tw := a.active[i]
		a.active = append(a.active[:i], a.active[i+1:]...)

		if !tw.started {
			tw.begin()
		}
		*target = tw.final()
		if tw.done != nil {
			tw.done()
		}
	}
}

// Active returns the number of running tweens
func (a *Animator) Active() int {
	return len(a.active)
}

// Busy reports whether target is being animated
func (a *Animator) Busy(target *float64) bool {
	for _, tw := range a.active {
		if tw.step.Target == target {
			return true
		}
	}
	return false
}

// Clear drops every tween without running callbacks
func (a *Animator) Clear() {
	a.active = nil
}
