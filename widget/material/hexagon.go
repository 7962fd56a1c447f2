// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/hexprogress/giohex/internal/f32color"
	"github.com/hexprogress/giohex/widget"
)

var (
	// Gray is the default track color.
	Gray = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	// Yellow is the default progress color.
	Yellow = color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}
)

// HexagonProgressStyle draws a HexagonProgress: the hexagon outline in
// TrackColor and, on top of it, the progress part of the outline in
// Color.
type HexagonProgressStyle struct {
	Color      color.NRGBA
	TrackColor color.NRGBA
	State      *widget.HexagonProgress
}

func HexagonProgress(state *widget.HexagonProgress) HexagonProgressStyle {
	return HexagonProgressStyle{
		Color:      Yellow,
		TrackColor: Gray,
		State:      state,
	}
}

// Layout advances the indicator animations to gtx.Now and draws it at
// the minimum constraints, or at a default size when they are zero.
func (h HexagonProgressStyle) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Min
	if sz.X == 0 && sz.Y == 0 {
		d := gtx.Dp(unit.Dp(64))
		sz = gtx.Constraints.Constrain(image.Pt(d, d))
	}

	s := h.State
	if s.Update(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	track, fill := h.TrackColor, h.Color
	if gtx.Queue == nil {
		track, fill = f32color.Disabled(track), f32color.Disabled(fill)
	}

	outline, progress := s.Paths(layout.FPt(sz))
	width := s.StrokeWidth()
	paint.FillShape(gtx.Ops, track, clip.Stroke{
		Path:  outline.Spec(gtx.Ops),
		Width: width,
	}.Op())
	if !progress.Empty() {
		paint.FillShape(gtx.Ops, fill, clip.Stroke{
			Path:  progress.Spec(gtx.Ops),
			Width: width,
		}.Op())
	}

	return layout.Dimensions{Size: sz}
}
