// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements frame driven value animations.

An Animator interpolates a value between two end points over a
duration. It has no timer of its own: the owner calls Tick with the
animation time of every frame, typically layout.Context.Now, and
schedules another frame while Tick reports that the animation is
running.

	a := &anim.Animator{
		From: 0, To: 1, Duration: time.Second,
		OnTick: func(v float32) { progress = v },
	}
	...
	if a.Tick(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

Animators are not safe for concurrent use. Tick them from the
goroutine that lays out the frame.
*/
package anim

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Easing maps the elapsed fraction of an animation, in [0, 1], to the
// interpolation fraction. Easings must map 0 to 0 and 1 to 1.
type Easing func(f float32) float32

// Linear interpolates at constant speed.
func Linear(f float32) float32 { return f }

// AccelerateDecelerate starts and ends slowly and is fastest in the
// middle.
func AccelerateDecelerate(f float32) float32 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 1
	}
	return float32(math.Cos(float64(f+1)*math.Pi)/2 + .5)
}

// Animator animates a value from From to To over Duration.
type Animator struct {
	From, To float32
	Duration time.Duration
	// Easing defaults to Linear.
	Easing Easing
	// OnTick receives the animated value on every tick.
	OnTick func(v float32)
	// OnComplete is called once, right after the tick that reports To.
	OnComplete func()

	start   time.Time
	started bool
	done    bool
	frac    float32
}

// Tick advances the animation to the frame time now and reports
// whether it is still running. The first tick starts the animation
// and reports From. Once the duration has elapsed, Tick reports To,
// calls OnComplete and the animation is done; further ticks do
// nothing.
func (a *Animator) Tick(now time.Time) bool {
	if a.done {
		return false
	}
	if !a.started {
		a.started = true
		a.start = now
	}
	a.frac = 1
	if a.Duration > 0 {
		a.frac = clamp1(float32(now.Sub(a.start).Seconds() / a.Duration.Seconds()))
	}
	if a.frac >= 1 {
		a.done = true
		a.report(a.To)
		if a.OnComplete != nil {
			a.OnComplete()
		}
		return false
	}
	ease := a.Easing
	if ease == nil {
		ease = Linear
	}
	a.report(Lerp(a.From, a.To, ease(a.frac)))
	return true
}

func (a *Animator) report(v float32) {
	if a.OnTick != nil {
		a.OnTick(v)
	}
}

// Started reports whether the animation has been ticked.
func (a *Animator) Started() bool { return a.started }

// Done reports whether the animation has completed.
func (a *Animator) Done() bool { return a.done }

// Fraction returns the elapsed fraction of the duration at the last
// tick.
func (a *Animator) Fraction() float32 { return a.frac }

// Lerp interpolates linearly between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
