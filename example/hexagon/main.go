// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that demonstrates the hexagon progress indicator.

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hexprogress/giohex/anim"
	hexwidget "github.com/hexprogress/giohex/widget"
	hexmaterial "github.com/hexprogress/giohex/widget/material"
)

var (
	duration   = flag.Duration("duration", time.Second, "duration of the progress animation")
	corner     = flag.Float64("corner", -1, "initial corner radius in dp; negative keeps the default")
	ease       = flag.String("ease", "linear", "progress easing (linear, accel)")
	screenshot = flag.String("screenshot", "", "save a screenshot of the half way frame to a file and exit")
)

// maxCorner is the upper end of the corner radius slider.
const maxCorner = unit.Dp(40)

func main() {
	flag.Parse()
	easing, err := parseEasing(*ease)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if *screenshot != "" {
		if err := saveScreenshot(*screenshot, easing); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := app.NewWindow(
			app.Title("Hexagon"),
			app.Size(unit.Dp(400), unit.Dp(560)),
		)
		if err := loop(w, easing); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func parseEasing(name string) (anim.Easing, error) {
	switch name {
	case "linear":
		return anim.Linear, nil
	case "accel":
		return anim.AccelerateDecelerate, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

// demo is the state of the demo screen.
type demo struct {
	theme    *material.Theme
	hex      *hexwidget.HexagonProgress
	replay   widget.Clickable
	radius   widget.Float
	replayIc *widget.Icon

	completed int
}

func newDemo(m unit.Metric, inv hexwidget.Invalidator, easing anim.Easing) *demo {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	d := &demo{
		theme:    th,
		hex:      hexwidget.NewHexagonProgress(m, hexwidget.WithInvalidator(inv), hexwidget.WithEasing(easing)),
		replayIc: mustIcon(widget.NewIcon(icons.AVReplay)),
	}
	if *corner >= 0 {
		d.hex.SetCornerRadius(float32(*corner) * pxPerDp(m))
	}
	d.radius.Value = d.hex.CornerRadius() / pxPerDp(m)
	d.hex.SetCompletionListener(func() {
		d.completed++
	})
	d.hex.SetAnimationDuration(*duration)
	return d
}

func pxPerDp(m unit.Metric) float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func loop(w *app.Window, easing anim.Easing) error {
	var (
		ops op.Ops
		d   *demo
	)
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			if d == nil {
				// The display density is known from the first frame.
				d = newDemo(e.Metric, w, easing)
			}
			gtx := layout.NewContext(&ops, e)
			d.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

func (d *demo) Layout(gtx layout.Context) layout.Dimensions {
	for d.replay.Clicked() {
		d.hex.SetAnimationDuration(d.hex.AnimationDuration())
	}
	if d.radius.Changed() {
		to := d.radius.Value * pxPerDp(gtx.Metric)
		d.hex.AnimateCornerRadius(d.hex.CornerRadius(), to, 250*time.Millisecond)
	}

	th := d.theme
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = gtx.Constraints.Max
				return hexmaterial.HexagonProgress(d.hex).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.H4(th, fmt.Sprintf("%.0f%%", d.hex.Progress()*100)).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Body2(th, fmt.Sprintf("Completed %d times", d.completed)).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Slider(th, &d.radius, 0, float32(maxCorner)).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.IconButton(th, &d.replay, d.replayIc, "Replay").Layout(gtx)
			}),
		)
	})
}
