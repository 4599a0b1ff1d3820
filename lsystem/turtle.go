package lsystem

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/lgart"
)

// ErrUnbalanced is matched by errors.Is for a ']' that has no '[' to pop.
var ErrUnbalanced = errors.New("lsystem: unbalanced sequence")

// BracketError reports where a sequence popped an empty stack.
type BracketError struct {
	Offset int // byte offset of the ']'
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("lsystem: mismatched bracket at offset %d", e.Offset)
}

// Is makes errors.Is(err, ErrUnbalanced) true.
func (e *BracketError) Is(target error) bool {
	return target == ErrUnbalanced
}

// Turtle is the pen state. Heading is in degrees, 0 is up and positive
// headings turn clockwise on screen.
type Turtle struct {
	Pos     lgart.Point
	Heading float64
}

// Forward returns the turtle moved dist along its heading.
func (t Turtle) Forward(dist float64) Turtle {
	t.Pos = t.Pos.Toward(t.Heading, dist)
	return t
}

// Move is what Walk reports for every symbol that changes position.
type Move struct {
	From, To Turtle
	// Jump is set when To was restored from the stack by ']'.
	Jump bool
	// Depth is the number of saved states on the stack.
	Depth int
}

// WalkFunc is called for each forward step and each jump.
type WalkFunc func(m Move)

// Walk runs the turtle over seq:
//
//	F  move forward step, reporting the move
//	+  turn clockwise by turn degrees
//	-  turn counter-clockwise by turn degrees
//	[  save position and heading
//	]  restore the last saved state, reporting a jump
//
// Anything else is ignored. Walk stops at the first ']' with nothing to
// restore and returns a *BracketError. Saved states left at the end are
// dropped.
func Walk(seq string, start Turtle, step, turn float64, fn WalkFunc) error {
	_, err := walk(seq, start, step, turn, fn)
	return err
}

func walk(seq string, start Turtle, step, turn float64, fn WalkFunc) (Turtle, error) {
	s := start
	var stack []Turtle
	for i, c := range seq {
		switch c {
		case 'F': // move forward
			next := s.Forward(step)
			fn(Move{From: s, To: next, Depth: len(stack)})
			s = next
		case '+': // turn right
			s.Heading += turn
		case '-': // turn left
			s.Heading -= turn
		case '[': // push
			stack = append(stack, s)
		case ']': // pop
			if len(stack) == 0 {
				return s, &BracketError{Offset: i}
			}
			prev := s
			s = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			fn(Move{From: prev, To: s, Jump: true, Depth: len(stack)})
		}
	}
	return s, nil
}

// Interpret returns a segment for every 'F' in seq, all drawn with the same
// width and color. No segments are returned for a sequence that fails.
func Interpret(seq string, start Turtle, step, turn, width float64, col colorful.Color) ([]lgart.Segment, error) {
	var segs []lgart.Segment
	err := Walk(seq, start, step, turn, func(m Move) {
		if m.Jump {
			return
		}
		segs = append(segs, lgart.Segment{
			From:  m.From.Pos,
			To:    m.To.Pos,
			Width: width,
			Color: col,
		})
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}

// Extent returns the bounding box of every position the turtle visits.
func Extent(seq string, start Turtle, step, turn float64) (lgart.Bounds, error) {
	var b lgart.Bounds
	b.Extend(start.Pos)
	err := Walk(seq, start, step, turn, func(m Move) {
		b.Extend(m.To.Pos)
	})
	return b, err
}

// Final returns the turtle state after the whole sequence has run.
func Final(seq string, start Turtle, step, turn float64) (Turtle, error) {
	return walk(seq, start, step, turn, func(Move) {})
}
