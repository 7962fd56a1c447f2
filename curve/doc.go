// SPDX-License-Identifier: Unlicense OR MIT

/*
Package curve implements retained paths of lines and quadratic Bézier
curves, with the operations that clip.Path leaves out: rounding the
corners of a path and measuring lengths along it.

Lines are stored as degenerate quadratic Béziers, like Gio paths, so
every segment is a Quad. Paths are replayed into an op list with
Path.Spec.

	var hex, rounded, part curve.Path
	hexagon.Outline(&hex, size, width)
	curve.Corner(&rounded, &hex, radius)

	var m curve.Measure
	m.SetPath(&rounded)
	m.Segment(0, m.Length()/2, &part)
	paint.FillShape(ops, color, clip.Stroke{Path: part.Spec(ops), Width: width}.Op())
*/
package curve
