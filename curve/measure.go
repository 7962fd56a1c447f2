// SPDX-License-Identifier: Unlicense OR MIT

package curve

import (
	"golang.org/x/exp/slices"
)

// Measure computes arc lengths along the contours of a Path and
// extracts parts of them. A Measure starts on the first contour of
// the path given to SetPath; NextContour advances it.
type Measure struct {
	path    *Path
	contour int
	// ends[i] is the length of the contour up to and including
	// segment i.
	ends []float32
}

// SetPath positions m on the first contour of p. The path must not be
// modified while it is measured.
func (m *Measure) SetPath(p *Path) {
	m.path = p
	m.contour = 0
	m.measure()
}

// NextContour moves to the next contour of the path and reports
// whether there was one.
func (m *Measure) NextContour() bool {
	if m.path == nil || m.contour+1 >= len(m.path.Contours) {
		return false
	}
	m.contour++
	m.measure()
	return true
}

func (m *Measure) measure() {
	m.ends = m.ends[:0]
	c := m.current()
	if c == nil {
		return
	}
	var l float32
	for _, q := range c.Quads {
		l += q.Len()
		m.ends = append(m.ends, l)
	}
}

func (m *Measure) current() *Contour {
	if m.path == nil || m.contour >= len(m.path.Contours) {
		return nil
	}
	return &m.path.Contours[m.contour]
}

// Length returns the total length of the current contour.
func (m *Measure) Length() float32 {
	if len(m.ends) == 0 {
		return 0
	}
	return m.ends[len(m.ends)-1]
}

// IsClosed reports whether the current contour is closed.
func (m *Measure) IsClosed() bool {
	c := m.current()
	return c != nil && c.Closed
}

// Segment replaces dst with the part of the current contour between
// the distances start and stop, measured from the contour start and
// following its direction. Distances are pinned to [0, Length]. If the
// resulting range is empty, Segment leaves dst empty and returns false.
func (m *Measure) Segment(start, stop float32, dst *Path) bool {
	dst.Reset()
	l := m.Length()
	if start < 0 {
		start = 0
	}
	if stop > l {
		stop = l
	}
	// The negated comparison also rejects NaN distances.
	if !(start < stop) {
		return false
	}
	qs := m.current().Quads
	i0, t0 := m.locate(start)
	i1, t1 := m.locate(stop)
	if i0 == i1 {
		q := qs[i0].Sub(t0, t1)
		dst.MoveTo(q.From)
		dst.add(q)
		return true
	}
	q := qs[i0].Sub(t0, 1)
	dst.MoveTo(q.From)
	dst.add(q)
	for _, q := range qs[i0+1 : i1] {
		dst.add(q)
	}
	dst.add(qs[i1].Sub(0, t1))
	return true
}

// locate returns the segment containing distance d and the curve
// parameter of d within it.
func (m *Measure) locate(d float32) (int, float32) {
	i, _ := slices.BinarySearch(m.ends, d)
	if i >= len(m.ends) {
		i = len(m.ends) - 1
	}
	var begin float32
	if i > 0 {
		begin = m.ends[i-1]
	}
	q := m.current().Quads[i]
	return i, q.solve(d-begin, m.ends[i]-begin)
}
