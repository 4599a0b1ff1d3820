package lgart

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToward(t *testing.T) {
	tests := []struct {
		heading, dist float64
		want          Point
	}{
		{0, 50, Point{0, -50}},
		{90, 10, Point{10, 0}},
		{180, 10, Point{0, 10}},
		{-90, 10, Point{-10, 0}},
		{30, 35, Point{17.5, -35 * math.Cos(math.Pi/6)}},
	}

	for _, tt := range tests {
		got := Point{}.Toward(tt.heading, tt.dist)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Want Toward(%v, %v) = %v, got %v", tt.heading, tt.dist, tt.want, got)
		}
	}
}

func TestBoundsFit(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatalf("Want zero Bounds to be empty")
	}
	b.Extend(Point{-10, -20})
	b.Extend(Point{10, 0})
	if b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("Want 20x20 box, got %vx%v", b.Dx(), b.Dy())
	}

	fit := b.Fit(200, 100, 10)
	// 80 pixels of height available for 20 units, so the scale is 4.
	tl := fit(Point{-10, -20})
	br := fit(Point{10, 0})
	if !near(tl.X, 60) || !near(tl.Y, 10) {
		t.Errorf("Want top left at (60,10), got %v", tl)
	}
	if !near(br.X, 140) || !near(br.Y, 90) {
		t.Errorf("Want bottom right at (140,90), got %v", br)
	}
}

func TestBoundsFitSinglePoint(t *testing.T) {
	var b Bounds
	b.Extend(Point{3, 4})
	got := b.Fit(10, 10, 0)(Point{3, 4})
	if !near(got.X, 5) || !near(got.Y, 5) {
		t.Errorf("Want single point centered at (5,5), got %v", got)
	}
}

func TestSegmentLen(t *testing.T) {
	s := Segment{From: Point{0, 0}, To: Point{3, 4}}
	if s.Len() != 5 {
		t.Errorf("Want length 5, got %v", s.Len())
	}
}
