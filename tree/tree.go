// Package tree grows a binary fractal tree by direct recursion.
package tree

import (
	"errors"
	"fmt"

	"github.com/scottkirkwood/lgart"
)

const (
	// Decay is how much shorter each generation of branches is.
	Decay = 0.7
	// MaxDepth keeps 2^depth-1 branches within reason.
	MaxDepth = 24
)

// ErrTooDeep is returned for depths above MaxDepth.
var ErrTooDeep = errors.New("tree: depth too large")

// Branch is one limb of the tree. Depth counts down to 1 at the leaves.
type Branch struct {
	From, To lgart.Point
	Length   float64
	Heading  float64
	Depth    int
}

// Walk visits every branch in pre-order: a branch, then the subtree turned
// by -angle, then the subtree turned by +angle.
func Walk(origin lgart.Point, length, heading, angle float64, depth int, visit func(Branch)) error {
	if depth < 0 {
		return fmt.Errorf("tree: negative depth %d", depth)
	}
	if depth > MaxDepth {
		return fmt.Errorf("%w: %d > %d", ErrTooDeep, depth, MaxDepth)
	}
	walk(origin, length, heading, angle, depth, visit)
	return nil
}

func walk(from lgart.Point, length, heading, angle float64, depth int, visit func(Branch)) {
	if depth == 0 {
		return
	}
	to := from.Toward(heading, length)
	visit(Branch{From: from, To: to, Length: length, Heading: heading, Depth: depth})
	walk(to, length*Decay, heading-angle, angle, depth-1, visit)
	walk(to, length*Decay, heading+angle, angle, depth-1, visit)
}

// Branches returns the 2^depth-1 segments of the tree. Width is the remaining
// depth and the hue shifts by 20 degrees per level.
func Branches(origin lgart.Point, length, heading, angle float64, depth int) ([]lgart.Segment, error) {
	segs := make([]lgart.Segment, 0, Count(depth))
	err := Walk(origin, length, heading, angle, depth, func(b Branch) {
		segs = append(segs, lgart.Segment{
			From:  b.From,
			To:    b.To,
			Width: float64(b.Depth),
			Color: lgart.Hsl(120+20*float64(b.Depth), 70, 50),
		})
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}

// Count is the number of branches a tree of this depth has.
func Count(depth int) int {
	if depth <= 0 {
		return 0
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	return 1<<uint(depth) - 1
}
