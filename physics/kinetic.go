package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/vmath"
)

// Integrate advances position by one frame of velocity: p = p + v
func Integrate(b *core.Body) {
	b.Pos = r2.Add(b.Pos, b.Vel)
}

// Damp scales velocity by the settling or steady coefficient
func Damp(b *core.Body, p *Params) {
	k := p.DampingSteady
	if b.Settling {
		k = p.DampingSettling
	}
	b.Vel = r2.Scale(k, b.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *core.Body, dv r2.Vec) {
	b.Vel = r2.Add(b.Vel, dv)
}

// SetImpulse overrides velocity (drag release)
func SetImpulse(b *core.Body, v r2.Vec) {
	b.Vel = v
}

// Bounds returns the valid center range on one axis for a body of radius r
func Bounds(dim, r, padding float64) (lo, hi float64) {
	return r + padding, dim - r - padding
}

// ReflectBoundsX handles horizontal wall contact, returns true if the body was clamped
// Velocity heading into the wall is inverted and scaled by restitution
func ReflectBoundsX(b *core.Body, width, padding, restitution float64) bool {
	lo, hi := Bounds(width, b.Radius(), padding)
	x := vmath.ClampAxis(b.Pos.X, lo, hi)
	if x == b.Pos.X {
		return false
	}
	if (b.Pos.X < x && b.Vel.X < 0) || (b.Pos.X > x && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X * restitution
	}
	b.Pos.X = x
	return true
}

// ReflectBoundsY handles vertical wall contact, returns true if the body was clamped
func ReflectBoundsY(b *core.Body, height, padding, restitution float64) bool {
	lo, hi := Bounds(height, b.Radius(), padding)
	y := vmath.ClampAxis(b.Pos.Y, lo, hi)
	if y == b.Pos.Y {
		return false
	}
	if (b.Pos.Y < y && b.Vel.Y < 0) || (b.Pos.Y > y && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y * restitution
	}
	b.Pos.Y = y
	return true
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(b *core.Body, width, height, padding, restitution float64) bool {
	rx := ReflectBoundsX(b, width, padding, restitution)
	ry := ReflectBoundsY(b, height, padding, restitution)
	return rx || ry
}

// ContainCenter clamps a center point for radius r without touching velocity
func ContainCenter(pos r2.Vec, r, width, height, padding float64) r2.Vec {
	loX, hiX := Bounds(width, r, padding)
	loY, hiY := Bounds(height, r, padding)
	return r2.Vec{
		X: vmath.ClampAxis(pos.X, loX, hiX),
		Y: vmath.ClampAxis(pos.Y, loY, hiY),
	}
}

// InBounds reports whether the body center satisfies the containment invariant
func InBounds(b *core.Body, width, height, padding float64) bool {
	return ContainCenter(b.Pos, b.Radius(), width, height, padding) == b.Pos
}
