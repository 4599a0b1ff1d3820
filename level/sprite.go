package level

// Sprite is the walking player. It is the only state kept between frames.
type Sprite struct {
	X     float64
	Dir   float64 // +1 walking right, -1 walking left
	Frame int     // animation frame, 0..FrameCount-1
}

const (
	// FrameCount is the length of the walk cycle.
	FrameCount = 60
	// WalkSpeed is how far the player moves per frame.
	WalkSpeed = 0.5
	// EdgeMargin is how close to a side the player gets before turning.
	EdgeMargin = 30.0
)

// NewSprite returns the player at its starting spot facing right.
func NewSprite() Sprite {
	return Sprite{X: 50, Dir: 1}
}

// Step advances one frame on a surface `width` wide.
func (s Sprite) Step(width float64) Sprite {
	if s.Dir == 0 {
		s.Dir = 1
	}
	s.Frame = (s.Frame + 1) % FrameCount
	s.X += s.Dir * WalkSpeed
	if s.X < EdgeMargin || s.X > width-EdgeMargin {
		s.Dir = -s.Dir
	}
	return s
}
