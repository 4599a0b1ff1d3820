package lgart

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette used by the fractal and preview scenes.
var (
	Background = MustHex("#1a1a1a")
	LSystemInk = MustHex("#4CAF50")
	SkyTop     = MustHex("#0a1a2a")
	SkyBottom  = MustHex("#2a3a4a")
	GroundInk  = MustHex("#2d3d4d")
	Body       = MustHex("#3498db")
	Limbs      = MustHex("#2980b9")
	Head       = MustHex("#f1c40f")
	Face       = Named(colornames.Black)

	// Highlight is the translucent strip drawn on top of each platform.
	Highlight = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
)

// Hsl returns a color from hue in degrees (any value, it wraps) and
// saturation and lightness in percent.
func Hsl(hue, sat, light float64) colorful.Color {
	return colorful.Hsl(WrapHue(hue), sat/100, light/100)
}

// WrapHue maps any hue in degrees into [0, 360).
func WrapHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// MustHex parses a "#rrggbb" string and panics on bad input.
// Only use it for constants.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Named converts one of the x/image colornames into a colorful.Color.
func Named(c color.RGBA) colorful.Color {
	col, _ := colorful.MakeColor(c)
	return col
}

// Stop is one color stop of a linear gradient, Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// ColorAt returns the gradient color at t in [0, 1], blending in Lab space
// between the surrounding stops.
func ColorAt(stops []Stop, t float64) colorful.Color {
	if len(stops) == 0 {
		return colorful.Color{}
	}
	t = Clamp(t, 0, 1)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t == b.Offset {
			return b.Color
		}
		if t < b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return a.Color.BlendLab(b.Color, (t-a.Offset)/span).Clamped()
		}
	}
	return stops[len(stops)-1].Color
}
