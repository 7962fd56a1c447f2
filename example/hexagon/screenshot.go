// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/png"
	"os"
	"time"

	"gioui.org/gpu/headless"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/hexprogress/giohex/anim"
)

// saveScreenshot renders the demo at half of the progress animation
// into a PNG file.
func saveScreenshot(f string, easing anim.Easing) error {
	const scale = 1.5
	sz := image.Point{X: 400 * scale, Y: 560 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()

	m := unit.Metric{PxPerDp: scale, PxPerSp: scale}
	d := newDemo(m, nil, easing)
	t0 := time.Now()
	for _, at := range []time.Time{t0, t0.Add(*duration / 2)} {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Metric:      m,
			Constraints: layout.Exact(sz),
			Now:         at,
			Queue:       new(router.Router),
		}
		d.Layout(gtx)
		if err := w.Frame(gtx.Ops); err != nil {
			return err
		}
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	out, err := os.Create(f)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
