package gltut

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
)

func colorNear(a, b gputypes.Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestColorFrom(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want gputypes.Color
	}{
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"transparent", color.Transparent, Transparent},
		{"red", colornames.Red, gputypes.Color{R: 1, G: 0, B: 0, A: 1}},
		{"cornflower", colornames.Cornflowerblue, gputypes.Color{R: 100.0 / 255, G: 149.0 / 255, B: 237.0 / 255, A: 1}},
		{"half red premultiplied", color.RGBA{R: 128, A: 128}, gputypes.Color{R: 1, A: 128.0 / 255}},
		{"half red straight", color.NRGBA{R: 255, A: 128}, gputypes.Color{R: 1, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFrom(tt.in); !colorNear(got, tt.want) {
				t.Errorf("ColorFrom(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAClamps(t *testing.T) {
	got := RGBA(-1, 0.5, 2, 1)
	want := gputypes.Color{R: 0, G: 0.5, B: 1, A: 1}
	if got != want {
		t.Errorf("RGBA() = %+v, want %+v", got, want)
	}
}
