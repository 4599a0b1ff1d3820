package lgart

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// gradientBands is how many solid strips approximate a linear gradient,
// canvas has no gradient paint.
const gradientBands = 64

// Context is my abstraction for Canvas, it implements Exporter.
// Canvas puts the origin at the bottom left, so every y is flipped here.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	width  float64
	height float64
}

// NewContext returns a vector surface of width x height pixels.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// Size returns the surface size in pixels
func (ctx *Context) Size() (float64, float64) {
	return ctx.width, ctx.height
}

// WriteFile writes to a PNG, SVG or PDF file depending on the extension.
func (ctx *Context) WriteFile(fname string) error {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	}
	return fmt.Errorf("unsupported file format %q", filepath.Ext(fname))
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(1.0))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) flip(y float64) float64 {
	return ctx.height - y
}

// MoveTo moves the path to x,y without connecting the path. It starts a new independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.flip(y))
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.flip(y))
}

// StrokeLine strokes the current path and resets it.
func (ctx *Context) StrokeLine(col color.Color, width float64) {
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(color.Transparent)
	ctx.ctx.SetStrokeColor(col)
	ctx.ctx.SetStrokeWidth(width)
	ctx.ctx.Stroke()
	ctx.ctx.Pop()
}

// FillRect draws a filled rectangle with its top left at x,y
func (ctx *Context) FillRect(x, y, w, h float64, col color.Color) {
	ctx.fill(col, func() {
		ctx.ctx.DrawPath(x, ctx.flip(y+h), canvas.Rectangle(w, h))
	})
}

// FillArc fills the pie slice of a circle centered on x,y.
func (ctx *Context) FillArc(x, y, r, startAngle, endAngle float64, col color.Color) {
	// Flipping y mirrors the sweep direction.
	theta0 := -startAngle * 180 / math.Pi
	theta1 := -endAngle * 180 / math.Pi
	p := &canvas.Path{}
	if math.Abs(endAngle-startAngle) >= 2*math.Pi {
		p = canvas.Circle(r)
	} else {
		p.MoveTo(0, 0)
		p.LineTo(r*math.Cos(Radians(theta0)), r*math.Sin(Radians(theta0)))
		p.Arc(r, r, 0, theta0, theta1)
		p.Close()
	}
	ctx.fill(col, func() {
		ctx.ctx.DrawPath(x, ctx.flip(y), p)
	})
}

// FillLinearGradient approximates a vertical gradient with thin solid bands.
func (ctx *Context) FillLinearGradient(x, y, w, h float64, stops []Stop) {
	band := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := (float64(i) + 0.5) / gradientBands
		// overlap bands slightly so no seams show when rasterized
		bh := band + 0.5
		if i == gradientBands-1 {
			bh = band
		}
		ctx.FillRect(x, y+float64(i)*band, w, bh, ColorAt(stops, t))
	}
}

func (ctx *Context) fill(col color.Color, draw func()) {
	ctx.ctx.Push()
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.SetFillColor(col)
	draw()
	ctx.ctx.Pop()
}
