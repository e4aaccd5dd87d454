package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Contact is one overlapping pair resolved against a position snapshot
type Contact struct {
	A, B        int
	Normal      r2.Vec // Unit vector from A to B
	Penetration float64
}

// FindContacts lists every overlapping pair in the snapshot
// pos and diameter are indexed like the body slice
func FindContacts(pos []r2.Vec, diameter []float64, out []Contact) []Contact {
	out = out[:0]
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			if c, ok := contact(i, j, pos[i], pos[j], diameter[i], diameter[j]); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func contact(i, j int, a, b r2.Vec, da, db float64) (Contact, bool) {
	minDist := (da + db) / 2
	delta := r2.Sub(b, a)
	dist := r2.Norm(delta)
	if dist >= minDist {
		return Contact{}, false
	}

	var normal r2.Vec
	if dist < 1e-9 {
		// Coincident centers: separate along a fixed axis chosen from the pair indices
		angle := float64((i*31+j*17)%360) * math.Pi / 180
		normal = r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	} else {
		normal = r2.Scale(1/dist, delta)
	}
	return Contact{A: i, B: j, Normal: normal, Penetration: minDist - dist}, true
}

// Separation splits the response of one contact between its bodies
// A pinned body takes nothing and its partner absorbs the whole push
// Returned vectors are unit-penetration shares to scale by the caller's constant
func Separation(c Contact, pinnedA, pinnedB bool) (shareA, shareB r2.Vec) {
	switch {
	case pinnedA && pinnedB:
		return r2.Vec{}, r2.Vec{}
	case pinnedA:
		return r2.Vec{}, r2.Scale(2*c.Penetration, c.Normal)
	case pinnedB:
		return r2.Scale(-2*c.Penetration, c.Normal), r2.Vec{}
	default:
		return r2.Scale(-c.Penetration, c.Normal), r2.Scale(c.Penetration, c.Normal)
	}
}
