package gltut

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// Common clear colors.
var (
	Black       = gputypes.Color{R: 0, G: 0, B: 0, A: 1}
	White       = gputypes.Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = gputypes.Color{}
)

// ColorFrom converts any color.Color to a straight-alpha clear color.
func ColorFrom(c color.Color) gputypes.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return gputypes.Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// RGBA returns a clear color from straight-alpha components in [0, 1].
func RGBA(r, g, b, a float64) gputypes.Color {
	return gputypes.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
