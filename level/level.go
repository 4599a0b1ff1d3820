// Package level lays out the platforms of the game preview with the same
// generators that draw the fractal.
package level

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/lgart"
	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/lsystem"
	"github.com/scottkirkwood/lgart/tree"
)

const (
	// GroundHeight is the strip at the bottom the player walks on.
	GroundHeight = 30.0
	// PlatformHeight is the thickness of every generated platform.
	PlatformHeight = 10.0
	// Rule is the fixed rewrite rule of the L-system levels.
	Rule = lsystem.DefaultRule
)

// Level is everything the preview draws except the player.
type Level struct {
	Platforms []lgart.Platform
	// GroundY is the top of the ground, where the player stands.
	GroundY float64
}

// Synthesize builds the platforms for a surface of width x height. The last
// platform is always the ground.
func Synthesize(mode config.Mode, depth int, angle, length, width, height float64) (Level, error) {
	groundY := height - GroundHeight
	origin := lgart.Point{X: width / 2, Y: groundY}

	var (
		ps  []lgart.Platform
		err error
	)
	switch mode {
	case config.Fractal:
		ps, err = branchPlatforms(origin, length*0.8, angle, depth)
	case config.LSystem:
		ps, err = lsystemPlatforms(origin, length*0.5, angle, depth)
	default:
		err = fmt.Errorf("level: unknown mode %q", mode)
	}
	if err != nil {
		return Level{}, err
	}

	ground := Ground(width, height)
	ground.Platforms = append(ps, ground.Platforms...)
	return ground, nil
}

// Ground is a level with nothing but the ground strip, used when the
// platforms cannot be generated.
func Ground(width, height float64) Level {
	groundY := height - GroundHeight
	return Level{
		Platforms: []lgart.Platform{{
			Origin: lgart.Point{X: 0, Y: groundY},
			W:      width,
			H:      GroundHeight,
			Color:  lgart.GroundInk,
		}},
		GroundY: groundY,
	}
}

// branchPlatforms puts a platform across every branch of a tree.
func branchPlatforms(origin lgart.Point, length, angle float64, depth int) ([]lgart.Platform, error) {
	ps := make([]lgart.Platform, 0, tree.Count(depth)+1)
	err := tree.Walk(origin, length, 0, angle, depth, func(b tree.Branch) {
		w := math.Max(PlatformHeight, b.Length*0.8)
		ps = append(ps, lgart.Platform{
			Origin: lgart.Point{
				X: math.Min(b.From.X, b.To.X) - w*0.1,
				Y: math.Min(b.From.Y, b.To.Y) - PlatformHeight/2,
			},
			W:     w,
			H:     PlatformHeight,
			Color: lgart.Hsl(120+30*float64(b.Depth), 70, 40),
		})
	})
	return ps, err
}

// lsystemPlatforms puts a platform under every forward step of the fixed rule.
func lsystemPlatforms(origin lgart.Point, step, angle float64, depth int) ([]lgart.Platform, error) {
	seq, err := lsystem.Expand("F", Rule, depth)
	if err != nil {
		return nil, err
	}
	ps := make([]lgart.Platform, 0, lsystem.Count(seq, 'F')+1)
	err = lsystem.Walk(seq, lsystem.Turtle{Pos: origin}, step, angle, func(m lsystem.Move) {
		if m.Jump {
			return
		}
		from, to := m.From.Pos, m.To.Pos
		ps = append(ps, lgart.Platform{
			Origin: lgart.Point{
				X: math.Min(from.X, to.X) - PlatformHeight/2,
				Y: math.Min(from.Y, to.Y) - PlatformHeight/2,
			},
			W:     math.Abs(to.X-from.X) + PlatformHeight,
			H:     PlatformHeight,
			Color: lgart.Hsl(140+math.Mod(m.From.Heading-90, 360), 70, 40),
		})
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}
