package gamemath

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"partial", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 5, H: 5}, false},
		{"apart", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"zero width inside", Rect{X: 15, Y: 15, W: 0, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Fatalf("Overlaps is not symmetric")
			}
		})
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	for _, p := range [][2]float64{{0, 0}, {10, 10}, {5, 5}, {10, 0}} {
		if !r.Contains(p[0], p[1]) {
			t.Fatalf("Contains(%v) = false", p)
		}
	}
	if r.Contains(10.01, 5) {
		t.Fatal("point outside reported inside")
	}
}

func TestEmptyRectContainsNothing(t *testing.T) {
	for _, r := range []Rect{{}, {X: 5, Y: 5, W: 0, H: 10}, {W: 10, H: -1}} {
		if !r.Empty() {
			t.Fatalf("%+v not empty", r)
		}
		if r.Contains(r.X, r.Y) {
			t.Fatalf("%+v contains its own origin", r)
		}
	}
}

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name                 string
		srcW, srcH, dstW, dh float64
		scale, ox, oy        float64
	}{
		{"wider destination", 100, 100, 200, 100, 2, 0, -50},
		{"taller destination", 100, 100, 100, 200, 2, -50, 0},
		{"same aspect", 160, 90, 320, 180, 2, 0, 0},
		{"degenerate", 0, 10, 100, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ox, oy := CoverFit(tt.srcW, tt.srcH, tt.dstW, tt.dh)
			if s != tt.scale || ox != tt.ox || oy != tt.oy {
				t.Fatalf("CoverFit = (%v, %v, %v), want (%v, %v, %v)", s, ox, oy, tt.scale, tt.ox, tt.oy)
			}
			if s > 0 && (tt.srcW*s < tt.dstW || tt.srcH*s < tt.dh) {
				t.Fatal("image does not cover the destination")
			}
		})
	}
}

func TestShadowScale(t *testing.T) {
	tests := []struct {
		dist, want float64
	}{
		{0, 1},
		{-5, 1},
		{100, 0.5},
		{140, 0.3},
		{1000, 0.3},
	}
	for _, tt := range tests {
		if got := ShadowScale(tt.dist, 200, 0.3); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ShadowScale(%v) = %v, want %v", tt.dist, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(5, 0, -1); got != 0 {
		t.Fatalf("Clamp inverted = %v", got)
	}
}

func TestOscillateAndBob(t *testing.T) {
	if got := Oscillate(0, 0.5, 0, 60); got != 60 {
		t.Fatalf("Oscillate at phase 0 = %v", got)
	}
	if got := Oscillate(0, 0.5, math.Pi, 60); math.Abs(got+60) > 1e-9 {
		t.Fatalf("Oscillate at phase pi = %v", got)
	}
	if got := Bob(0, 0.5, 5); got != 0 {
		t.Fatalf("Bob(0) = %v", got)
	}
	if got := Bob(1, 0, 5); got != 0 {
		t.Fatalf("Bob with zero period = %v", got)
	}
}
