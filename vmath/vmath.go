package vmath

import "math"

// --- Scalars ---

// Clamp limits v to [lo, hi], with an inverted range values below lo give lo, all others hi
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAxis limits a center coordinate to [lo, hi]
// An inverted range (container smaller than the body) collapses to its midpoint
func ClampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if math.IsNaN(v) {
		return (lo + hi) / 2
	}
	return Clamp(v, lo, hi)
}

// Finite reports whether f is neither NaN nor ±Inf
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// OrZero returns f, or 0 when f is not finite
func OrZero(f float64) float64 {
	if !Finite(f) {
		return 0
	}
	return f
}

// Lerp interpolates linearly between a and b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// --- Randomness ---

// FastRand is a seedable xorshift64 source, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Signed returns a value in [-1, 1)
func (r *FastRand) Signed() float64 {
	return r.Float64()*2 - 1
}

// Jitter returns a value in [-mag/2, mag/2)
func (r *FastRand) Jitter(mag float64) float64 {
	return (r.Float64() - 0.5) * mag
}
