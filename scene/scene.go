// Package scene draws one full pass of the fractal and of the game preview.
package scene

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/lgart"
	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/level"
	"github.com/scottkirkwood/lgart/lsystem"
	"github.com/scottkirkwood/lgart/tree"
)

const (
	// LSystemWidth is the stroke width of L-system drawings.
	LSystemWidth = 2.0
	// fitMargin is the border kept free when a drawing is fit to the surface.
	fitMargin = 10.0
	// mouthSteps is how many segments approximate the mouth arc.
	mouthSteps = 8
)

// Fractal clears s and draws the tree or L-system described by p.
// On error only the cleared background is left.
func Fractal(s lgart.Surface, p config.Params) error {
	s.FillRect(0, 0, p.Width, p.Height, lgart.Background)

	segs, err := Segments(p)
	if err != nil {
		return err
	}
	lgart.DrawSegments(s, segs)
	return nil
}

// Segments generates the fractal of p without drawing it. Both generators
// start at the bottom center pointing up.
func Segments(p config.Params) ([]lgart.Segment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start := lgart.Point{X: p.Width / 2, Y: p.Height}

	switch p.Mode {
	case config.Fractal:
		return tree.Branches(start, p.Length, 0, p.Angle, p.Depth)
	case config.LSystem:
		seq, err := lsystem.Expand(p.Axiom, p.Replacement(), p.Depth)
		if err != nil {
			return nil, err
		}
		turtle := lsystem.Turtle{Pos: start}
		segs, err := lsystem.Interpret(seq, turtle, p.Length, p.Angle, LSystemWidth, lgart.LSystemInk)
		if err != nil {
			return nil, err
		}
		if p.Fit {
			b, err := lsystem.Extent(seq, turtle, p.Length, p.Angle)
			if err != nil {
				return nil, err
			}
			fit := b.Fit(p.Width, p.Height, fitMargin)
			for i := range segs {
				segs[i].From = fit(segs[i].From)
				segs[i].To = fit(segs[i].To)
			}
		}
		return segs, nil
	}
	return nil, fmt.Errorf("scene: unknown mode %q", p.Mode)
}

// Level lays out the preview platforms for p.
func Level(p config.Params) (level.Level, error) {
	if err := p.Validate(); err != nil {
		return level.Level{}, err
	}
	return level.Synthesize(p.Mode, p.Depth, p.Angle, p.Length, p.Width, p.Height)
}

// Preview draws the sky, the level and the player, and returns the player
// advanced by one frame.
func Preview(s lgart.Surface, lvl level.Level, sp level.Sprite, width, height float64) level.Sprite {
	s.FillRect(0, 0, width, height, lgart.Background)
	s.FillLinearGradient(0, 0, width, height, []lgart.Stop{
		{Offset: 0, Color: lgart.SkyTop},
		{Offset: 1, Color: lgart.SkyBottom},
	})
	s.FillRect(0, height-level.GroundHeight, width, level.GroundHeight, lgart.GroundInk)

	lgart.DrawPlatforms(s, lvl.Platforms)

	next := sp.Step(width)
	drawPlayer(s, next, lvl.GroundY)
	return next
}

func drawPlayer(s lgart.Surface, sp level.Sprite, groundY float64) {
	x, y := sp.X, groundY
	phase := float64(sp.Frame) * 0.2

	// body
	s.FillRect(x-10, y-40, 20, 20, lgart.Body)

	// legs
	legOffset := math.Sin(phase) * 3
	s.FillRect(x-7, y-20, 4, 20+legOffset, lgart.Limbs)
	s.FillRect(x+3, y-20, 4, 20-legOffset, lgart.Limbs)

	// arms
	s.FillRect(x-15, y-35+math.Sin(phase)*2, 5, 5, lgart.Limbs)
	s.FillRect(x+10, y-35+math.Sin(phase+math.Pi)*2, 5, 5, lgart.Limbs)

	// head
	s.FillArc(x, y-45, 8, 0, 2*math.Pi, lgart.Head)

	// eyes look the way it walks
	eyeX := -2.0
	if sp.Dir > 0 {
		eyeX = 2
	}
	s.FillArc(x-3+eyeX, y-47, 1.5, 0, 2*math.Pi, lgart.Face)
	s.FillArc(x+3+eyeX, y-47, 1.5, 0, 2*math.Pi, lgart.Face)

	// mouth, the lower half of a small circle
	mx, my := x+sp.Dir*2, y-42
	for i := 0; i <= mouthSteps; i++ {
		a := math.Pi * float64(i) / mouthSteps
		px, py := mx+2*math.Cos(a), my+2*math.Sin(a)
		if i == 0 {
			s.MoveTo(px, py)
		} else {
			s.LineTo(px, py)
		}
	}
	s.StrokeLine(lgart.Face, 1)
}
