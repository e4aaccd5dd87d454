package vmath

import (
	"math"
	"testing"
)

// TestClamp covers the normal and the inverted range
func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		// Inverted: below lo gives lo, anything else hi
		{1, 4, 2, 4},
		{3, 4, 2, 2},
		{9, 4, 2, 2},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}

// TestFastRandDeterministic checks equal seeds give equal streams in [0,1)
func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("Expected equal streams at %d, got %v and %v", i, x, y)
		}
		if x < 0 || x >= 1 || math.IsNaN(x) {
			t.Fatalf("Expected value in [0,1), got %v", x)
		}
	}
}
