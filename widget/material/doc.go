// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the hexagon progress indicator.
//
// As with the Gio material widgets, the indicator is split into two
// parts: the stateful widget.HexagonProgress and the stateless drawing
// of it.
//
// This snippet restarts the progress animation every time it
// completes:
//
//	hex := widget.NewHexagonProgress(e.Metric, widget.WithInvalidator(w))
//	hex.SetCompletionListener(func() {
//		hex.SetAnimationDuration(time.Second)
//	})
//	hex.SetAnimationDuration(time.Second)
//
// and draws it in every frame:
//
//	material.HexagonProgress(hex).Layout(gtx)
//
// # Customization
//
// The stroke colors are fields of the style:
//
//	style := material.HexagonProgress(hex)
//	style.Color = color.NRGBA{R: 0xff, A: 0xff}
//	style.Layout(gtx)
//
// The stroke width is fixed when the state is created, see
// widget.WithStrokeWidth.
package material
