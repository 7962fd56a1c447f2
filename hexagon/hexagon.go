// SPDX-License-Identifier: Unlicense OR MIT

// Package hexagon computes the regular hexagon traced by the hexagon
// progress indicator.
package hexagon

import (
	"math"

	"gioui.org/f32"

	"github.com/hexprogress/giohex/curve"
)

// Sides is the number of sides of a hexagon.
const Sides = 6

// Radius returns the distance from the center to the vertices of the
// hexagon that fits a box of the given size, inset so that a stroke
// of width strokeWidth stays inside the box.
func Radius(size f32.Point, strokeWidth float32) float32 {
	c := size.Mul(.5)
	return min(c.X, c.Y) - strokeWidth/2
}

// Vertices returns the vertices of the hexagon centered in a box of
// the given size. The first vertex is at the top and the others
// follow clockwise in screen coordinates.
//
// Degenerate sizes are not rejected: a negative radius mirrors the
// hexagon through its center.
func Vertices(size f32.Point, strokeWidth float32) [Sides]f32.Point {
	c := size.Mul(.5)
	r := float64(Radius(size, strokeWidth))
	var vs [Sides]f32.Point
	for i := range vs {
		angle := 2*math.Pi*float64(i)/Sides - math.Pi/2
		sin, cos := math.Sincos(angle)
		vs[i] = f32.Pt(
			c.X+float32(r*cos),
			c.Y+float32(r*sin),
		)
	}
	return vs
}

// Outline replaces p with the closed hexagon outline, starting at the
// top vertex.
func Outline(p *curve.Path, size f32.Point, strokeWidth float32) {
	p.Reset()
	for i, v := range Vertices(size, strokeWidth) {
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	p.Close()
}

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
