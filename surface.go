// Package lgart holds the geometry, colors and drawing surfaces shared by the
// fractal generators.
package lgart

import (
	"image/color"
)

// Surface is the set of drawing primitives the generators are rendered with.
// Coordinates are in pixels with the origin at the top left and y pointing down.
// Angles passed to FillArc are radians, measured clockwise from +x on screen.
type Surface interface {
	// MoveTo starts a new subpath at x,y.
	MoveTo(x, y float64)
	// LineTo adds a line from the current point to x,y.
	LineTo(x, y float64)
	// StrokeLine strokes the current path and clears it.
	StrokeLine(col color.Color, width float64)
	FillRect(x, y, w, h float64, col color.Color)
	FillArc(x, y, r, startAngle, endAngle float64, col color.Color)
	// FillLinearGradient fills the rectangle with a top to bottom gradient.
	FillLinearGradient(x, y, w, h float64, stops []Stop)
}

// Exporter is a Surface that can be saved to disk.
type Exporter interface {
	Surface
	// WriteFile picks the encoding from the file extension.
	WriteFile(fname string) error
	Size() (width, height float64)
}

// DrawSegments strokes segs in order. Segments that continue where the previous
// one ended with the same style are joined into a single path; any other
// segment starts a new subpath so a turtle jump never draws a connecting line.
func DrawSegments(s Surface, segs []Segment) {
	for i, seg := range segs {
		if i == 0 || !continues(segs[i-1], seg) {
			if i > 0 {
				prev := segs[i-1]
				if !sameStyle(prev, seg) {
					s.StrokeLine(prev.Color, prev.Width)
				}
			}
			s.MoveTo(seg.From.X, seg.From.Y)
		}
		s.LineTo(seg.To.X, seg.To.Y)
	}
	if n := len(segs); n > 0 {
		s.StrokeLine(segs[n-1].Color, segs[n-1].Width)
	}
}

func continues(prev, next Segment) bool {
	return prev.To == next.From && sameStyle(prev, next)
}

func sameStyle(a, b Segment) bool {
	return a.Width == b.Width && a.Color == b.Color
}

// DrawPlatforms fills each platform and adds a 2 pixel highlight along its top.
func DrawPlatforms(s Surface, ps []Platform) {
	for _, p := range ps {
		s.FillRect(p.Origin.X, p.Origin.Y, p.W, p.H, p.Color)
		s.FillRect(p.Origin.X, p.Origin.Y, p.W, 2, Highlight)
	}
}
