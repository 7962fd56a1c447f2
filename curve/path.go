// SPDX-License-Identifier: Unlicense OR MIT

package curve

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Contour is a connected run of segments starting at Start.
type Contour struct {
	Start  f32.Point
	Quads  []Quad
	Closed bool
}

// Path is a retained list of contours made of lines and quadratic
// Bézier curves. Unlike clip.Path, a Path can be measured, split and
// transformed before it is replayed into an op list with Spec.
//
// The zero Path is empty and ready to use. Reset keeps the allocated
// storage, so a Path can serve as a per-frame scratch buffer.
type Path struct {
	Contours []Contour
	pen      f32.Point
}

// Pos returns the current pen position.
func (p *Path) Pos() f32.Point { return p.pen }

// Empty reports whether p has no segments.
func (p *Path) Empty() bool {
	for _, c := range p.Contours {
		if len(c.Quads) > 0 {
			return false
		}
	}
	return true
}

// Reset clears p.
func (p *Path) Reset() {
	for i := range p.Contours {
		p.Contours[i].Quads = p.Contours[i].Quads[:0]
	}
	p.Contours = p.Contours[:0]
	p.pen = f32.Point{}
}

// MoveTo starts a new contour at to.
func (p *Path) MoveTo(to f32.Point) {
	if n := len(p.Contours); n > 0 {
		if c := &p.Contours[n-1]; len(c.Quads) == 0 && !c.Closed {
			// Consecutive moves replace each other.
			c.Start = to
			p.pen = to
			return
		}
	}
	p.Contours = append(p.Contours, Contour{Start: to})
	p.pen = to
}

// LineTo records a line from the pen to to.
func (p *Path) LineTo(to f32.Point) {
	p.add(lineQuad(p.pen, to))
}

// QuadTo records a quadratic Bézier from the pen to end
// with the control point ctrl.
func (p *Path) QuadTo(ctrl, to f32.Point) {
	p.add(Quad{From: p.pen, Ctrl: ctrl, To: to})
}

func (p *Path) add(q Quad) {
	c := p.current()
	c.Quads = append(c.Quads, q)
	p.pen = q.To
}

// current returns the contour receiving segments, starting a new one
// at the pen if there is none or the last one is closed.
func (p *Path) current() *Contour {
	n := len(p.Contours)
	if n == 0 || p.Contours[n-1].Closed {
		p.Contours = append(p.Contours, Contour{Start: p.pen})
		n++
	}
	return &p.Contours[n-1]
}

// Close closes the current contour with a line back to its start,
// if needed.
func (p *Path) Close() {
	n := len(p.Contours)
	if n == 0 || p.Contours[n-1].Closed {
		return
	}
	c := &p.Contours[n-1]
	if p.pen != c.Start {
		c.Quads = append(c.Quads, lineQuad(p.pen, c.Start))
	}
	c.Closed = true
	p.pen = c.Start
}

// Spec replays p into ops and returns the resulting clip path.
func (p *Path) Spec(ops *op.Ops) clip.PathSpec {
	var cp clip.Path
	cp.Begin(ops)
	for _, c := range p.Contours {
		if len(c.Quads) == 0 {
			continue
		}
		cp.MoveTo(c.Start)
		for _, q := range c.Quads {
			if q.IsLine() {
				cp.LineTo(q.To)
			} else {
				cp.QuadTo(q.Ctrl, q.To)
			}
		}
		if c.Closed {
			cp.Close()
		}
	}
	return cp.End()
}
