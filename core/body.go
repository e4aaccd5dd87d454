package core

import "gonum.org/v1/gonum/spatial/r2"

// Body is the simulated representative of one visible Entity
// Pos is the circle center in layout-area-local units, Vel is in units per frame
type Body struct {
	Entity Entity

	Pos      r2.Vec
	Vel      r2.Vec
	Diameter float64

	// Dragging is set only while the drag controller owns the body
	Dragging bool
	// Settling selects the stronger post-initialization damping
	Settling bool
}

// Radius returns half the diameter
func (b *Body) Radius() float64 {
	return b.Diameter / 2
}

// Speed returns velocity magnitude
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}

// Contains reports whether point p lies inside the body circle
func (b *Body) Contains(p r2.Vec) bool {
	d := r2.Sub(p, b.Pos)
	r := b.Radius()
	return d.X*d.X+d.Y*d.Y <= r*r
}

// Overlaps reports whether two bodies intersect by more than tolerance units
func Overlaps(a, b *Body, tolerance float64) bool {
	minDist := (a.Diameter + b.Diameter) / 2
	return minDist-r2.Norm(r2.Sub(b.Pos, a.Pos)) > tolerance
}

// CloneBodies returns an independent copy of the slice
func CloneBodies(bodies []Body) []Body {
	out := make([]Body, len(bodies))
	copy(out, bodies)
	return out
}
