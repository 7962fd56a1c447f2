// SPDX-License-Identifier: Unlicense OR MIT

package curve

import (
	"gioui.org/f32"
)

// Corner replaces dst with src where every vertex joining two lines is
// rounded by a quadratic Bézier. The rounding starts and ends radius
// away from the vertex along its edges, and uses the vertex itself as
// control point; edges shorter than twice the radius are rounded from
// their midpoints. The logical vertices of src are left unchanged.
//
// A radius that is not positive leaves the path as is. Contours that
// contain curves are copied unchanged.
//
// Closed contours are rounded at every vertex. Their rounded version
// starts at the middle of the corner of the first vertex, so that
// measuring from the start still begins at that vertex.
func Corner(dst, src *Path, radius float32) {
	dst.Reset()
	for _, c := range src.Contours {
		switch {
		case len(c.Quads) == 0:
		case !(radius > 0) || !lines(c.Quads):
			copyContour(dst, c)
		case c.Closed:
			cornerClosed(dst, c, radius)
		default:
			cornerOpen(dst, c, radius)
		}
	}
}

func lines(qs []Quad) bool {
	for _, q := range qs {
		if !q.IsLine() {
			return false
		}
	}
	return true
}

func copyContour(dst *Path, c Contour) {
	dst.MoveTo(c.Start)
	for _, q := range c.Quads {
		dst.add(q)
	}
	if c.Closed {
		dst.Close()
	}
}

// step returns the offset from a towards b where the rounding of a
// corner at a or b meets the edge, and whether a straight part of the
// edge remains between the two corners.
func step(a, b f32.Point, radius float32) (f32.Point, bool) {
	d := b.Sub(a)
	dist := length(d)
	if dist <= 2*radius {
		return d.Mul(.5), false
	}
	return d.Mul(radius / dist), true
}

func cornerOpen(dst *Path, c Contour, radius float32) {
	qs := c.Quads
	dst.MoveTo(c.Start)
	for i, q := range qs {
		s, straight := step(q.From, q.To, radius)
		if i > 0 {
			dst.QuadTo(q.From, q.From.Add(s))
		}
		switch {
		case i == len(qs)-1:
			dst.LineTo(q.To)
		case i == 0 || straight:
			dst.LineTo(q.To.Sub(s))
		}
	}
}

func cornerClosed(dst *Path, c Contour, radius float32) {
	qs := c.Quads
	n := len(qs)
	first, _ := step(qs[0].From, qs[0].To, radius)
	last, _ := step(qs[n-1].From, qs[n-1].To, radius)
	v0 := qs[0].From
	head, tail := Quad{From: v0.Sub(last), Ctrl: v0, To: v0.Add(first)}.Split(.5)

	dst.MoveTo(tail.From)
	dst.QuadTo(tail.Ctrl, tail.To)
	for i, q := range qs {
		s, straight := step(q.From, q.To, radius)
		if i > 0 {
			dst.QuadTo(q.From, q.From.Add(s))
		}
		if straight {
			dst.LineTo(q.To.Sub(s))
		}
	}
	dst.QuadTo(head.Ctrl, head.To)
	dst.Close()
}
