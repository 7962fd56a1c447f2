// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/f32"
	"gioui.org/unit"
	"golang.org/x/exp/slices"

	"github.com/hexprogress/giohex/anim"
	"github.com/hexprogress/giohex/curve"
	"github.com/hexprogress/giohex/hexagon"
)

// DefaultStrokeWidth is the width of the hexagon strokes.
const DefaultStrokeWidth = unit.Dp(15)

// Invalidator requests a redraw of the window hosting a widget.
// *app.Window implements Invalidator.
type Invalidator interface {
	Invalidate()
}

// HexagonProgress is the state of a hexagonal progress indicator: a
// hexagon outline with a stroke covering the Progress fraction of its
// perimeter.
//
// Every property write requests a redraw from the Invalidator, if
// any. Animations are driven by the frame clock through Update, which
// the indicator style calls at every layout.
//
// HexagonProgress must only be used from the goroutine running the
// window event loop. Overlapping animations of the same property are
// not coordinated: they all write the property, and the one started
// last wins each frame.
type HexagonProgress struct {
	strokeWidth  float32
	cornerRadius float32
	progress     float32
	duration     time.Duration
	easing       anim.Easing

	onComplete func()
	inv        Invalidator

	anims []*anim.Animator
	// starting collects animations started by callbacks
	// during Update.
	starting []*anim.Animator
	updating bool

	// Per frame geometry.
	hexagon curve.Path
	outline curve.Path
	segment curve.Path
	measure curve.Measure
}

// Option configures a HexagonProgress.
type Option func(h *HexagonProgress, m unit.Metric)

// WithInvalidator sets the target of redraw requests.
func WithInvalidator(inv Invalidator) Option {
	return func(h *HexagonProgress, _ unit.Metric) {
		h.inv = inv
	}
}

// WithStrokeWidth overrides DefaultStrokeWidth.
func WithStrokeWidth(w unit.Dp) Option {
	return func(h *HexagonProgress, m unit.Metric) {
		h.strokeWidth = dp(m, w)
	}
}

// WithEasing sets the easing of progress animations. The default is
// anim.Linear.
func WithEasing(e anim.Easing) Option {
	return func(h *HexagonProgress, _ unit.Metric) {
		h.easing = e
	}
}

// NewHexagonProgress returns an indicator for a display of metric m.
// The stroke width is fixed for the lifetime of the indicator; the
// corner radius starts at half the stroke width and the progress at
// zero.
func NewHexagonProgress(m unit.Metric, opts ...Option) *HexagonProgress {
	h := &HexagonProgress{
		strokeWidth: dp(m, DefaultStrokeWidth),
		easing:      anim.Linear,
	}
	for _, o := range opts {
		o(h, m)
	}
	h.cornerRadius = h.strokeWidth / 2
	return h
}

// dp converts v to pixels without rounding.
func dp(m unit.Metric, v unit.Dp) float32 {
	s := m.PxPerDp
	if s == 0 {
		s = 1
	}
	return float32(v) * s
}

// StrokeWidth returns the stroke width in pixels.
func (h *HexagonProgress) StrokeWidth() float32 {
	return h.strokeWidth
}

// SetCompletionListener sets the function called when a progress
// animation completes, replacing any previous one. A nil f removes the
// listener.
func (h *HexagonProgress) SetCompletionListener(f func()) {
	h.onComplete = f
}

// CornerRadius returns the radius of the rounding of the hexagon
// corners, in pixels.
func (h *HexagonProgress) CornerRadius() float32 {
	return h.cornerRadius
}

// SetCornerRadius sets the corner radius and requests a redraw. A
// radius that is not positive draws sharp corners.
func (h *HexagonProgress) SetCornerRadius(r float32) {
	h.cornerRadius = r
	h.invalidate()
}

// Progress returns the fraction of the perimeter covered by the
// progress stroke.
func (h *HexagonProgress) Progress() float32 {
	return h.progress
}

// SetProgress sets the progress and requests a redraw. The value is not
// clamped: drawing covers nothing below 0 and the whole perimeter
// above 1.
func (h *HexagonProgress) SetProgress(p float32) {
	h.progress = p
	h.invalidate()
}

// AnimationDuration returns the duration of the last progress
// animation started by SetAnimationDuration.
func (h *HexagonProgress) AnimationDuration() time.Duration {
	return h.duration
}

// SetAnimationDuration starts an animation of the progress from 0 to 1
// over d. When it completes, the completion listener registered at that
// time is called once. Animations started earlier keep running.
func (h *HexagonProgress) SetAnimationDuration(d time.Duration) {
	h.duration = d
	h.start(&anim.Animator{
		From:       0,
		To:         1,
		Duration:   d,
		Easing:     h.easing,
		OnTick:     h.SetProgress,
		OnComplete: h.complete,
	})
}

func (h *HexagonProgress) complete() {
	if h.onComplete != nil {
		h.onComplete()
	}
}

// AnimateCornerRadius animates the corner radius linearly from from to
// to over d.
func (h *HexagonProgress) AnimateCornerRadius(from, to float32, d time.Duration) {
	h.start(&anim.Animator{
		From:     from,
		To:       to,
		Duration: d,
		OnTick:   h.SetCornerRadius,
	})
}

func (h *HexagonProgress) start(a *anim.Animator) {
	if h.updating {
		h.starting = append(h.starting, a)
	} else {
		h.anims = append(h.anims, a)
	}
	// Request the frame that ticks the animation for the first time.
	h.invalidate()
}

// Animating reports whether any animation is running.
func (h *HexagonProgress) Animating() bool {
	return len(h.anims) > 0 || len(h.starting) > 0
}

// Update advances the running animations to the frame time now, in the
// order they were started, and reports whether any animation is still
// running. Animations started by callbacks during Update begin at the
// next frame.
func (h *HexagonProgress) Update(now time.Time) bool {
	h.updating = true
	for _, a := range h.anims {
		a.Tick(now)
	}
	h.updating = false
	for i := 0; i < len(h.anims); {
		if h.anims[i].Done() {
			h.anims = slices.Delete(h.anims, i, i+1)
		} else {
			i++
		}
	}
	h.anims = append(h.anims, h.starting...)
	h.starting = h.starting[:0]
	return h.Animating()
}

// Paths traces the indicator in a box of the given size. It returns
// the hexagon outline with its corners rounded by the corner radius,
// and the part of the outline covered by the progress, measured from
// the top vertex. The paths are overwritten by the next call.
func (h *HexagonProgress) Paths(size f32.Point) (outline, progress *curve.Path) {
	hexagon.Outline(&h.hexagon, size, h.strokeWidth)
	curve.Corner(&h.outline, &h.hexagon, h.cornerRadius)
	h.measure.SetPath(&h.outline)
	h.measure.Segment(0, h.progress*h.measure.Length(), &h.segment)
	return &h.outline, &h.segment
}

func (h *HexagonProgress) invalidate() {
	if h.inv != nil {
		h.inv.Invalidate()
	}
}
