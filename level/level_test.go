package level

import (
	"errors"
	"testing"

	"github.com/scottkirkwood/lgart"
	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/lsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundIsLast(t *testing.T) {
	for _, mode := range []config.Mode{config.Fractal, config.LSystem} {
		lvl, err := Synthesize(mode, 3, 25, 80, 800, 300)
		require.NoError(t, err, mode)
		require.NotEmpty(t, lvl.Platforms)

		ground := lvl.Platforms[len(lvl.Platforms)-1]
		assert.Equal(t, lgart.Point{X: 0, Y: 270}, ground.Origin)
		assert.Equal(t, 800.0, ground.W)
		assert.Equal(t, GroundHeight, ground.H)
		assert.Equal(t, lgart.GroundInk, ground.Color)
		assert.Equal(t, ground.Top(), lvl.GroundY)
	}
}

func TestGround(t *testing.T) {
	lvl := Ground(400, 200)
	require.Len(t, lvl.Platforms, 1)
	assert.Equal(t, 170.0, lvl.GroundY)
	assert.Equal(t, lgart.Point{X: 0, Y: 170}, lvl.Platforms[0].Origin)
	assert.Equal(t, 400.0, lvl.Platforms[0].W)

	// the fallback matches the ground a full level ends with
	full, err := Synthesize(config.Fractal, 2, 25, 40, 400, 200)
	require.NoError(t, err)
	assert.Equal(t, lvl.Platforms[0], full.Platforms[len(full.Platforms)-1])
	assert.Equal(t, lvl.GroundY, full.GroundY)
}

func TestBranchPlatforms(t *testing.T) {
	lvl, err := Synthesize(config.Fractal, 4, 30, 100, 800, 300)
	require.NoError(t, err)
	// 2^4-1 branches plus the ground
	require.Len(t, lvl.Platforms, 16)

	root := lvl.Platforms[0]
	// the trunk is 80 long and points straight up from (400, 270)
	assert.InDelta(t, 64, root.W, 1e-9)
	assert.Equal(t, PlatformHeight, root.H)
	assert.InDelta(t, 400-6.4, root.Origin.X, 1e-9)
	assert.InDelta(t, 270-80-5, root.Origin.Y, 1e-9)
	assert.Equal(t, lgart.Hsl(240, 70, 40), root.Color)

	for _, p := range lvl.Platforms[:15] {
		assert.GreaterOrEqual(t, p.W, PlatformHeight)
	}
}

func TestBranchPlatformsDepthZero(t *testing.T) {
	lvl, err := Synthesize(config.Fractal, 0, 30, 100, 800, 300)
	require.NoError(t, err)
	assert.Len(t, lvl.Platforms, 1)
}

func TestLSystemPlatforms(t *testing.T) {
	for depth, want := range []int{1, 5, 25, 125} {
		lvl, err := Synthesize(config.LSystem, depth, 25, 40, 800, 300)
		require.NoError(t, err)
		assert.Len(t, lvl.Platforms, want+1, "depth %d", depth)
	}

	lvl, err := Synthesize(config.LSystem, 0, 25, 40, 800, 300)
	require.NoError(t, err)
	first := lvl.Platforms[0]
	// one step of 20 straight up: a 10 wide platform centered on x=400
	assert.InDelta(t, 395, first.Origin.X, 1e-9)
	assert.InDelta(t, 245, first.Origin.Y, 1e-9)
	assert.InDelta(t, 10, first.W, 1e-9)
	// a heading of 0 gives hue 140-90
	assert.Equal(t, lgart.Hsl(50, 70, 40), first.Color)
}

func TestLSystemIgnoresUserRule(t *testing.T) {
	a, err := Synthesize(config.LSystem, 2, 25, 40, 800, 300)
	require.NoError(t, err)
	seq, err := lsystem.Expand("F", Rule, 2)
	require.NoError(t, err)
	assert.Len(t, a.Platforms, lsystem.Count(seq, 'F')+1)
}

func TestSynthesizeErrors(t *testing.T) {
	_, err := Synthesize("spiral", 2, 25, 40, 800, 300)
	assert.Error(t, err)

	_, err = Synthesize(config.LSystem, 40, 25, 40, 800, 300)
	assert.True(t, errors.Is(err, lsystem.ErrTooLong), "got %v", err)

	// within the depth range the params allow
	_, err = Synthesize(config.LSystem, config.MaxDepth, 25, 40, 800, 300)
	assert.True(t, errors.Is(err, lsystem.ErrTooLong), "got %v", err)
}

func TestSpriteWalksAndTurns(t *testing.T) {
	s := NewSprite()
	s = s.Step(800)
	assert.Equal(t, 50.5, s.X)
	assert.Equal(t, 1, s.Frame)
	assert.Equal(t, 1.0, s.Dir)

	s = Sprite{X: 770, Dir: 1, Frame: 59}
	s = s.Step(800)
	assert.Equal(t, 770.5, s.X)
	assert.Equal(t, -1.0, s.Dir)
	assert.Equal(t, 0, s.Frame)

	s = Sprite{X: 30, Dir: -1}
	s = s.Step(800)
	assert.Equal(t, 1.0, s.Dir)
}

func TestSpriteStaysOnScreen(t *testing.T) {
	s := NewSprite()
	for i := 0; i < 5000; i++ {
		s = s.Step(200)
		require.GreaterOrEqual(t, s.X, EdgeMargin-WalkSpeed)
		require.LessOrEqual(t, s.X, 200-EdgeMargin+WalkSpeed)
	}
}
