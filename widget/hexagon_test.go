// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/unit"

	"github.com/hexprogress/giohex/anim"
	"github.com/hexprogress/giohex/curve"
	"github.com/hexprogress/giohex/hexagon"
)

type countInvalidator int

func (c *countInvalidator) Invalidate() { *c++ }

func TestHexagonProgressDefaults(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{PxPerDp: 2})
	if got, want := h.StrokeWidth(), float32(30); got != want {
		t.Errorf("stroke width = %v, want %v", got, want)
	}
	if got, want := h.CornerRadius(), float32(15); got != want {
		t.Errorf("corner radius = %v, want %v", got, want)
	}
	if h.Progress() != 0 || h.Animating() {
		t.Errorf("progress = %v, animating = %v; want idle at 0", h.Progress(), h.Animating())
	}

	// The zero Metric maps dp to pixels 1:1.
	h = NewHexagonProgress(unit.Metric{}, WithStrokeWidth(4))
	if h.StrokeWidth() != 4 || h.CornerRadius() != 2 {
		t.Errorf("stroke width = %v, corner radius = %v; want 4, 2", h.StrokeWidth(), h.CornerRadius())
	}
}

func TestHexagonProgressInvalidates(t *testing.T) {
	var inv countInvalidator
	h := NewHexagonProgress(unit.Metric{PxPerDp: 1}, WithInvalidator(&inv))

	h.SetCornerRadius(4)
	if inv != 1 {
		t.Fatalf("got %d redraws after one write, want 1", inv)
	}
	h.SetCornerRadius(4)
	if inv != 2 || h.CornerRadius() != 4 {
		t.Errorf("got %d redraws after two writes of the same radius, want 2", inv)
	}
	h.SetProgress(.5)
	if inv != 3 {
		t.Errorf("got %d redraws after progress write, want 3", inv)
	}
	// No validation.
	h.SetCornerRadius(-3)
	h.SetProgress(1.5)
	if h.CornerRadius() != -3 || h.Progress() != 1.5 {
		t.Errorf("values were altered: radius %v, progress %v", h.CornerRadius(), h.Progress())
	}
}

// run ticks h every frame from t0 until its animations end and
// returns the time of the last frame.
func run(h *HexagonProgress, t0 time.Time, frame time.Duration, each func(now time.Time)) time.Time {
	now := t0
	for {
		running := h.Update(now)
		if each != nil {
			each(now)
		}
		if !running {
			return now
		}
		now = now.Add(frame)
	}
}

func TestHexagonProgressAnimation(t *testing.T) {
	var inv countInvalidator
	h := NewHexagonProgress(unit.Metric{PxPerDp: 2.625}, WithInvalidator(&inv))
	var (
		calls      int
		progressAt float32
	)
	h.SetCompletionListener(func() {
		calls++
		progressAt = h.Progress()
	})
	h.SetAnimationDuration(time.Second)
	if h.AnimationDuration() != time.Second || !h.Animating() {
		t.Fatalf("animation not started")
	}
	if inv == 0 {
		t.Error("starting an animation did not request a frame")
	}

	t0 := time.Unix(1000, 0)
	prev := float32(-1)
	end := run(h, t0, 16*time.Millisecond, func(now time.Time) {
		p := h.Progress()
		if p < prev {
			t.Errorf("progress decreased from %v to %v", prev, p)
		}
		prev = p
		if now.Sub(t0) < time.Second && calls != 0 {
			t.Errorf("completion listener called at %v, before the end", now.Sub(t0))
		}
	})
	if calls != 1 {
		t.Errorf("completion listener called %d times, want 1", calls)
	}
	if progressAt != 1 || h.Progress() != 1 {
		t.Errorf("progress = %v at completion, %v after; want 1", progressAt, h.Progress())
	}
	if d := end.Sub(t0); d < time.Second || d > time.Second+16*time.Millisecond {
		t.Errorf("animation ended after %v, want about 1s", d)
	}
	if h.Animating() {
		t.Error("animation still running")
	}
}

func TestHexagonProgressListenerReplaced(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{})
	var first, second int
	h.SetCompletionListener(func() { first++ })
	h.SetAnimationDuration(100 * time.Millisecond)
	h.SetCompletionListener(func() { second++ })
	run(h, time.Unix(0, 0), 10*time.Millisecond, nil)
	if first != 0 || second != 1 {
		t.Errorf("listeners called %d and %d times, want 0 and 1", first, second)
	}

	h.SetCompletionListener(nil)
	h.SetAnimationDuration(0)
	run(h, time.Unix(10, 0), 10*time.Millisecond, nil)
	if second != 1 {
		t.Error("removed listener was called")
	}
}

func TestHexagonProgressOverlappingAnimations(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{})
	var calls int
	h.SetCompletionListener(func() { calls++ })

	t0 := time.Unix(0, 0)
	h.SetAnimationDuration(time.Second)
	h.Update(t0)
	h.Update(t0.Add(500 * time.Millisecond))
	if p := h.Progress(); p != .5 {
		t.Fatalf("progress = %v, want 0.5", p)
	}
	// A second animation restarts from 0 and overrides the first while
	// both run.
	h.SetAnimationDuration(time.Second)
	h.Update(t0.Add(600 * time.Millisecond))
	if p := h.Progress(); p != 0 {
		t.Errorf("progress = %v, want 0 from the latest animation", p)
	}
	h.Update(t0.Add(time.Second))
	if calls != 1 {
		t.Errorf("first animation completed %d times, want 1", calls)
	}
	if p := h.Progress(); p >= 1 {
		t.Errorf("progress = %v, the latest animation wrote last", p)
	}
	run(h, t0.Add(time.Second), 100*time.Millisecond, nil)
	if calls != 2 {
		t.Errorf("completion listener called %d times, want 2", calls)
	}
}

func TestHexagonProgressRestartFromListener(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{})
	var calls int
	h.SetCompletionListener(func() {
		calls++
		if calls < 3 {
			h.SetAnimationDuration(50 * time.Millisecond)
		}
	})
	h.SetAnimationDuration(50 * time.Millisecond)
	run(h, time.Unix(0, 0), 10*time.Millisecond, nil)
	if calls != 3 {
		t.Errorf("completion listener called %d times, want 3", calls)
	}
}

func TestHexagonProgressAnimateCornerRadius(t *testing.T) {
	var inv countInvalidator
	h := NewHexagonProgress(unit.Metric{}, WithInvalidator(&inv))
	var calls int
	h.SetCompletionListener(func() { calls++ })
	h.AnimateCornerRadius(0, 40, 200*time.Millisecond)

	t0 := time.Unix(0, 0)
	h.Update(t0)
	if r := h.CornerRadius(); r != 0 {
		t.Errorf("radius = %v at start, want 0", r)
	}
	h.Update(t0.Add(50 * time.Millisecond))
	if r := h.CornerRadius(); r != 10 {
		t.Errorf("radius = %v at a quarter, want 10", r)
	}
	before := inv
	if h.Update(t0.Add(200 * time.Millisecond)) {
		t.Error("corner animation still running")
	}
	if r := h.CornerRadius(); r != 40 {
		t.Errorf("radius = %v at the end, want 40", r)
	}
	if inv != before+1 {
		t.Errorf("final tick requested %d redraws, want 1", inv-before)
	}
	if calls != 0 {
		t.Error("corner animation called the completion listener")
	}
}

func TestHexagonProgressEasing(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{}, WithEasing(anim.AccelerateDecelerate))
	h.SetAnimationDuration(time.Second)
	t0 := time.Unix(0, 0)
	h.Update(t0)
	h.Update(t0.Add(250 * time.Millisecond))
	if p := h.Progress(); p <= 0 || p >= .25 {
		t.Errorf("eased progress at a quarter = %v, want in (0, 0.25)", p)
	}
}

func pathLen(p *curve.Path) float32 {
	var m curve.Measure
	m.SetPath(p)
	return m.Length()
}

func TestHexagonProgressPaths(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{PxPerDp: 1})
	size := f32.Pt(200, 200)

	outline, progress := h.Paths(size)
	if !progress.Empty() {
		t.Error("progress 0 drew a progress stroke")
	}
	perimeter := pathLen(outline)
	sharp := hexagon.Sides * hexagon.Radius(size, h.StrokeWidth())
	if perimeter <= 0 || perimeter >= sharp {
		t.Errorf("rounded perimeter %v, want in (0, %v)", perimeter, sharp)
	}

	tests := []struct {
		progress float32
		want     float32
	}{
		{.25, .25},
		{.5, .5},
		{1, 1},
		{1.5, 1},
	}
	for _, tc := range tests {
		h.SetProgress(tc.progress)
		_, progress := h.Paths(size)
		if got, want := pathLen(progress), tc.want*perimeter; got < want-.01 || got > want+.01 {
			t.Errorf("progress %v: stroke length %v, want %v", tc.progress, got, want)
		}
		if start := progress.Contours[0].Start; start != outline.Contours[0].Start {
			t.Errorf("progress %v: stroke starts at %v, want %v", tc.progress, start, outline.Contours[0].Start)
		}
	}

	h.SetProgress(-1)
	if _, progress := h.Paths(size); !progress.Empty() {
		t.Error("negative progress drew a progress stroke")
	}
}

func TestHexagonProgressPathsCornerRadius(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{PxPerDp: 1})
	size := f32.Pt(200, 200)
	h.SetCornerRadius(0)
	outline, _ := h.Paths(size)
	sharp := pathLen(outline)
	if want := hexagon.Sides * hexagon.Radius(size, h.StrokeWidth()); sharp < want-.01 || sharp > want+.01 {
		t.Errorf("sharp perimeter %v, want %v", sharp, want)
	}
	// The rounded outline starts at the top vertex when sharp.
	if start, top := outline.Contours[0].Start, hexagon.Vertices(size, h.StrokeWidth())[0]; start != top {
		t.Errorf("outline starts at %v, want %v", start, top)
	}
	prev := sharp
	for _, r := range []float32{5, 10, 20} {
		h.SetCornerRadius(r)
		outline, _ := h.Paths(size)
		l := pathLen(outline)
		if l >= prev {
			t.Errorf("radius %v: perimeter %v is not shorter than %v", r, l, prev)
		}
		prev = l
	}
}

// TestHexagonProgressScenario follows a 200x200 indicator through a one
// second animation.
func TestHexagonProgressScenario(t *testing.T) {
	h := NewHexagonProgress(unit.Metric{PxPerDp: 3})
	if h.StrokeWidth() != 45 {
		t.Fatalf("stroke width = %v, want 15dp at 3px/dp", h.StrokeWidth())
	}
	var (
		calls int
		atEnd float32
	)
	h.SetCompletionListener(func() {
		calls++
		atEnd = h.Progress()
	})
	size := f32.Pt(200, 200)
	t0 := time.Unix(0, 0)
	h.SetAnimationDuration(1000 * time.Millisecond)
	var prev float32 = -1
	run(h, t0, 16*time.Millisecond, func(now time.Time) {
		outline, progress := h.Paths(size)
		l := pathLen(progress)
		if l < prev {
			t.Errorf("progress arc shrank from %v to %v at %v", prev, l, now.Sub(t0))
		}
		prev = l
		if calls == 1 && l < pathLen(outline)-.01 {
			t.Errorf("completed with a partial arc %v", l)
		}
	})
	if calls != 1 || atEnd != 1 {
		t.Errorf("completion listener called %d times with progress %v", calls, atEnd)
	}
}
