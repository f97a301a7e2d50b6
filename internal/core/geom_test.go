package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		ra, rb float64
		want   bool
	}{
		{"clearly apart", Vec2{0, 0}, Vec2{100, 0}, 5, 5, false},
		{"clearly overlapping", Vec2{0, 0}, Vec2{3, 0}, 5, 5, true},
		{"touching is not overlap", Vec2{0, 0}, Vec2{10, 0}, 5, 5, false},
		{"just inside boundary", Vec2{0, 0}, Vec2{9.999, 0}, 5, 5, true},
		{"diagonal", Vec2{0, 0}, Vec2{3, 4}, 3, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("CirclesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	// Crossing the wrap point must give the short way around
	d := AngleDiff(0.1, TwoPi-0.1)
	if math.Abs(d-0.2) > 1e-9 {
		t.Errorf("AngleDiff across wrap = %v, want 0.2", d)
	}
	d = AngleDiff(TwoPi-0.1, 0.1)
	if math.Abs(d+0.2) > 1e-9 {
		t.Errorf("AngleDiff across wrap = %v, want -0.2", d)
	}
}

func TestRectExpanded(t *testing.T) {
	r := RectF{X: 0, Y: 0, W: 100, H: 50}
	e := r.Expanded(2)
	if e.W != 200 || e.H != 100 {
		t.Errorf("Expanded size = %vx%v, want 200x100", e.W, e.H)
	}
	if e.X != -50 || e.Y != -25 {
		t.Errorf("Expanded origin = (%v,%v), want (-50,-25)", e.X, e.Y)
	}
	// Center must be preserved
	if !e.Contains(50, 25) {
		t.Error("expanded rect should contain original center")
	}
}

func TestMoveVecClamp(t *testing.T) {
	f := InputFrame{MoveX: 1, MoveY: 1}
	if l := f.MoveVec().Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("diagonal move intent length = %v, want 1", l)
	}
	f = InputFrame{MoveX: 0.5, MoveY: 0}
	if l := f.MoveVec().Len(); math.Abs(l-0.5) > 1e-9 {
		t.Errorf("partial move intent length = %v, want 0.5", l)
	}
}
