package lgart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point is a position on the drawing surface. Y grows downward.
type Point struct {
	X, Y float64
}

// Toward returns the point `dist` away from p along `heading` degrees,
// where a heading of 0 points up and positive headings turn clockwise.
func (p Point) Toward(heading, dist float64) Point {
	rad := Radians(heading)
	return Point{
		X: p.X + dist*math.Sin(rad),
		Y: p.Y - dist*math.Cos(rad),
	}
}

// Segment is a stroked line from From to To.
type Segment struct {
	From, To Point
	Width    float64
	Color    colorful.Color
}

// Len returns the length of the segment
func (s Segment) Len() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Platform is a filled axis-aligned rectangle.
type Platform struct {
	Origin Point // top left
	W, H   float64
	Color  colorful.Color
}

// Top returns the y coordinate of the top edge.
func (p Platform) Top() float64 {
	return p.Origin.Y
}

// Bounds is an axis-aligned bounding box.
// The zero value is empty; Extend it with the first point.
type Bounds struct {
	Min, Max Point
	valid    bool
}

// Extend grows b so it includes p.
func (b *Bounds) Extend(p Point) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Empty is true until the first point is added.
func (b Bounds) Empty() bool {
	return !b.valid
}

// Dx returns the width of the box.
func (b Bounds) Dx() float64 {
	return b.Max.X - b.Min.X
}

// Dy returns the height of the box.
func (b Bounds) Dy() float64 {
	return b.Max.Y - b.Min.Y
}

// Fit returns a function that maps points inside b onto the rectangle
// (0,0)-(width,height) leaving `margin` on every side, keeping the aspect
// ratio and centering the result.
func (b Bounds) Fit(width, height, margin float64) func(Point) Point {
	if b.Empty() {
		return func(p Point) Point { return p }
	}
	availW := math.Max(width-2*margin, 1)
	availH := math.Max(height-2*margin, 1)
	dx, dy := b.Dx(), b.Dy()
	scale := math.Inf(1)
	if dx > 0 {
		scale = availW / dx
	}
	if dy > 0 {
		scale = math.Min(scale, availH/dy)
	}
	if math.IsInf(scale, 1) {
		// a single point
		scale = 1
	}
	offX := margin + (availW-dx*scale)/2
	offY := margin + (availH-dy*scale)/2
	return func(p Point) Point {
		return Point{
			X: offX + (p.X-b.Min.X)*scale,
			Y: offY + (p.Y-b.Min.Y)*scale,
		}
	}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
