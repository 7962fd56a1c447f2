// SPDX-License-Identifier: Unlicense OR MIT

package curve

import (
	"math"

	"gioui.org/f32"
)

// Quad is a quadratic Bézier segment. Straight lines are modeled as
// degenerate Quads whose control point is the midpoint of From and To.
type Quad struct {
	From, Ctrl, To f32.Point
}

// lineQuad returns the degenerate Quad for the line from p0 to p1.
func lineQuad(p0, p1 f32.Point) Quad {
	return Quad{From: p0, Ctrl: p0.Add(p1).Mul(.5), To: p1}
}

// IsLine reports whether q is a straight line segment built by
// LineTo.
func (q Quad) IsLine() bool {
	const epsilon = 1e-3
	d := q.From.Add(q.To).Mul(.5).Sub(q.Ctrl)
	return math.Abs(float64(d.X)) < epsilon && math.Abs(float64(d.Y)) < epsilon
}

// Sample returns the point on q at t.
//
//	B(t) = (1-t)^2 P0 + 2(1-t)t P1 + t^2 P2
func (q Quad) Sample(t float32) f32.Point {
	t1 := 1 - t
	c0 := t1 * t1
	c1 := 2 * t1 * t
	c2 := t * t

	o := q.From.Mul(c0)
	o = o.Add(q.Ctrl.Mul(c1))
	o = o.Add(q.To.Mul(c2))
	return o
}

// Split returns the two halves of q, before and after t.
func (q Quad) Split(t float32) (Quad, Quad) {
	mid := q.Sample(t)
	return Quad{
			From: q.From,
			Ctrl: interp(q.From, q.Ctrl, t),
			To:   mid,
		}, Quad{
			From: mid,
			Ctrl: interp(q.Ctrl, q.To, t),
			To:   q.To,
		}
}

// Sub returns the part of q between t0 and t1, with t0 <= t1.
func (q Quad) Sub(t0, t1 float32) Quad {
	if t1 <= 0 {
		p := q.From
		return Quad{From: p, Ctrl: p, To: p}
	}
	head, _ := q.Split(t1)
	if t0 <= 0 {
		return head
	}
	_, tail := head.Split(t0 / t1)
	return tail
}

// Len returns the arc length of q.
// See:
//
//	https://malczak.linuxpl.com/blog/quadratic-bezier-curve-length/
func (q Quad) Len() float32 {
	p0, p1, p2 := q.From, q.Ctrl, q.To
	a := p0.Sub(p1.Mul(2)).Add(p2)
	b := p1.Mul(2).Sub(p0.Mul(2))
	A := 4 * dot(a, a)
	B := 4 * dot(a, b)
	C := dot(b, b)
	if f64Eq(A, 0) || f64Eq(C, 0) {
		// Either the control point is the midpoint or it coincides
		// with the start point: a straight line from p0 to p2.
		return length(p2.Sub(p0))
	}

	Sabc := 2 * math.Sqrt(A+B+C)
	A2 := math.Sqrt(A)
	A32 := 2 * A * A2
	C2 := 2 * math.Sqrt(C)
	BA := B / A2
	l := (A32*Sabc + A2*B*(Sabc-C2) + (4*C*A-B*B)*math.Log((2*A2+BA+Sabc)/(BA+C2))) / (4 * A32)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		// Collinear control points outside the chord.
		return q.flatLen()
	}
	return float32(l)
}

// flatLen approximates the length of q by a polyline.
func (q Quad) flatLen() float32 {
	const n = 64
	var (
		l    float32
		prev = q.From
	)
	for i := 1; i <= n; i++ {
		p := q.Sample(float32(i) / n)
		l += length(p.Sub(prev))
		prev = p
	}
	return l
}

// solve returns the t where the arc length of q from its start equals s.
// s must be in [0, total], with total the length of q.
func (q Quad) solve(s, total float32) float32 {
	switch {
	case s <= 0 || total <= 0:
		return 0
	case s >= total:
		return 1
	case q.IsLine():
		return s / total
	}
	lo, hi := float32(0), float32(1)
	for i := 0; i < 32; i++ {
		mid := (lo + hi) * .5
		head, _ := q.Split(mid)
		if head.Len() < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) * .5
}

// interp returns the interpolated point at t.
func interp(p, q f32.Point, t float32) f32.Point {
	return f32.Pt(
		(1-t)*p.X+t*q.X,
		(1-t)*p.Y+t*q.Y,
	)
}

func dot(p, q f32.Point) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

func length(p f32.Point) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

func f64Eq(a, b float64) bool {
	const epsilon = 1e-10
	return math.Abs(a-b) < epsilon
}
