// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color derives the colors of widget states.
package f32color

import (
	"image/color"
)

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled blends c towards its gray level and fades it, for drawing
// widgets that don't take input.
func Disabled(c color.NRGBA) color.NRGBA {
	const ratio = 80
	lum := approxLuminance(c)
	d := mix(c, color.NRGBA{A: c.A, R: lum, G: lum, B: lum}, ratio)
	return MulAlpha(d, 128+32)
}

// mix blends c1 and c2, weighting c1 by a/256.
func mix(c1, c2 color.NRGBA, a uint8) color.NRGBA {
	ai := int(a)
	return color.NRGBA{
		R: byte((int(c1.R)*ai + int(c2.R)*(256-ai)) / 256),
		G: byte((int(c1.G)*ai + int(c2.G)*(256-ai)) / 256),
		B: byte((int(c1.B)*ai + int(c2.B)*(256-ai)) / 256),
		A: byte((int(c1.A)*ai + int(c2.A)*(256-ai)) / 256),
	}
}

// approxLuminance is a fast approximate version of RGBA.Luminance.
func approxLuminance(c color.NRGBA) byte {
	const (
		r = 13933 // 0.2126 * 256 * 256
		g = 46871 // 0.7152 * 256 * 256
		b = 4732  // 0.0722 * 256 * 256
		t = r + g + b
	)
	return byte((r*int(c.R) + g*int(c.G) + b*int(c.B)) / t)
}
