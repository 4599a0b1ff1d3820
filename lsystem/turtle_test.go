package lsystem

import (
	"errors"
	"math"
	"testing"

	"github.com/scottkirkwood/lgart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretStraight(t *testing.T) {
	segs, err := Interpret("FF", Turtle{}, 10, 90, 2, lgart.LSystemInk)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, lgart.Point{X: 0, Y: 0}, segs[0].From)
	assert.InDelta(t, -10, segs[0].To.Y, 1e-9)
	assert.InDelta(t, -20, segs[1].To.Y, 1e-9)
	assert.Equal(t, 2.0, segs[1].Width)
	assert.Equal(t, lgart.LSystemInk, segs[1].Color)
}

func TestInterpretTurns(t *testing.T) {
	segs, err := Interpret("+F--F", Turtle{}, 10, 90, 1, lgart.LSystemInk)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	// right then back left past the start
	assert.InDelta(t, 10, segs[0].To.X, 1e-9)
	assert.InDelta(t, 0, segs[1].To.X, 1e-9)
	assert.InDelta(t, 0, segs[1].To.Y, 1e-9)
}

func TestInterpretIgnoresOtherSymbols(t *testing.T) {
	a, err := Interpret("FXF", Turtle{}, 5, 25, 1, lgart.LSystemInk)
	require.NoError(t, err)
	b, err := Interpret("FF", Turtle{}, 5, 25, 1, lgart.LSystemInk)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestInterpretIsPure(t *testing.T) {
	seq, err := Expand("F", DefaultRule, 3)
	require.NoError(t, err)
	start := Turtle{Pos: lgart.Point{X: 400, Y: 300}}

	a, err := Interpret(seq, start, 7, 25, 2, lgart.LSystemInk)
	require.NoError(t, err)
	b, err := Interpret(seq, start, 7, 25, 2, lgart.LSystemInk)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 125)
}

func TestBracketRestoresState(t *testing.T) {
	start := Turtle{Pos: lgart.Point{X: 1, Y: 2}, Heading: 10}
	tests := []string{
		"[F+F]",
		"[F[-F]+F]",
		"[][]",
		"[F][+F][-F]",
	}
	for _, seq := range tests {
		end, err := Final(seq, start, 10, 30)
		if err != nil {
			t.Errorf("Final(%q) failed: %v", seq, err)
			continue
		}
		if end != start {
			t.Errorf("Want %q to end at the start %v, got %v", seq, start, end)
		}
	}
}

func TestBracketJumpIsReported(t *testing.T) {
	var jumps []Move
	err := Walk("F[+F]F", Turtle{}, 10, 90, func(m Move) {
		if m.Jump {
			jumps = append(jumps, m)
		}
	})
	require.NoError(t, err)
	require.Len(t, jumps, 1)
	assert.InDelta(t, 10, jumps[0].From.Pos.X, 1e-9)
	assert.InDelta(t, -10, jumps[0].To.Pos.Y, 1e-9)
	assert.Equal(t, 0, jumps[0].Depth)
}

func TestMismatchedBracket(t *testing.T) {
	tests := []struct {
		seq    string
		offset int
	}{
		{"]", 0},
		{"F]", 1},
		{"[F]]", 3},
		{"F[+F]F]F", 6},
	}
	for _, tt := range tests {
		segs, err := Interpret(tt.seq, Turtle{}, 1, 30, 1, lgart.LSystemInk)
		if !errors.Is(err, ErrUnbalanced) {
			t.Errorf("Want ErrUnbalanced for %q, got %v", tt.seq, err)
			continue
		}
		var be *BracketError
		if !errors.As(err, &be) || be.Offset != tt.offset {
			t.Errorf("Want bracket error at %d for %q, got %v", tt.offset, tt.seq, err)
		}
		if segs != nil {
			t.Errorf("Want no segments for %q, got %d", tt.seq, len(segs))
		}
	}
}

func TestUnclosedBracketIsTolerated(t *testing.T) {
	segs, err := Interpret("F[+F", Turtle{}, 1, 30, 1, lgart.LSystemInk)
	require.NoError(t, err)
	assert.Len(t, segs, 2)
}

func TestExtent(t *testing.T) {
	b, err := Extent("F[+F]-F", Turtle{}, 10, 90)
	require.NoError(t, err)
	assert.InDelta(t, -10, b.Min.X, 1e-9)
	assert.InDelta(t, 10, b.Max.X, 1e-9)
	assert.InDelta(t, -10, b.Min.Y, 1e-9)
	assert.InDelta(t, 0, b.Max.Y, 1e-9)
}

func TestForwardHeading(t *testing.T) {
	got := Turtle{Heading: 45}.Forward(math.Sqrt2)
	assert.InDelta(t, 1, got.Pos.X, 1e-9)
	assert.InDelta(t, -1, got.Pos.Y, 1e-9)
}
