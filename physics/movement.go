package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *r2.Vec, maxSpeed float64) bool {
	mag := r2.Norm(*vel)
	if !vmath.Finite(mag) {
		*vel = r2.Vec{}
		return true
	}
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	*vel = r2.Scale(maxSpeed/mag, *vel)
	return true
}

// Nudge adds a bounded random perturbation when speed falls under minSpeed
// Returns true if a nudge was applied
func Nudge(vel *r2.Vec, minSpeed, bound float64, rng *vmath.FastRand) bool {
	if rng == nil || r2.Norm(*vel) >= minSpeed {
		return false
	}
	vel.X += rng.Signed() * bound
	vel.Y += rng.Signed() * bound
	return true
}
