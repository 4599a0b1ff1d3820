package lgart

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// Raster is a Surface backed by gg, it only knows how to save PNGs.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a raster surface of width x height pixels.
func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

// Size returns the surface size in pixels
func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

// Image returns the pixels drawn so far.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// WriteFile saves the surface as a PNG.
func (r *Raster) WriteFile(fname string) error {
	if ext := strings.ToLower(filepath.Ext(fname)); ext != ".png" {
		return fmt.Errorf("unsupported file format %q", ext)
	}
	return r.dc.SavePNG(fname)
}

// MoveTo starts a new subpath at (x, y).
func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

// LineTo extends the current path to (x, y).
func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

// StrokeLine strokes the current path and clears it.
func (r *Raster) StrokeLine(col color.Color, width float64) {
	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	r.dc.Stroke()
}

// FillRect fills an axis aligned rectangle.
func (r *Raster) FillRect(x, y, w, h float64, col color.Color) {
	r.dc.NewSubPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(col)
	r.dc.Fill()
}

// FillArc fills the pie slice of the circle at (x, y) between the two
// angles, in radians.
func (r *Raster) FillArc(x, y, rad, startAngle, endAngle float64, col color.Color) {
	r.dc.NewSubPath()
	r.dc.MoveTo(x, y)
	r.dc.DrawArc(x, y, rad, startAngle, endAngle)
	r.dc.ClosePath()
	r.dc.SetColor(col)
	r.dc.Fill()
}

// FillLinearGradient fills a rectangle with a top to bottom gradient.
func (r *Raster) FillLinearGradient(x, y, w, h float64, stops []Stop) {
	grad := gg.NewLinearGradient(x, y, x, y+h)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, s.Color)
	}
	r.dc.NewSubPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetFillStyle(grad)
	r.dc.Fill()
}
