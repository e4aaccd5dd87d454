package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/vmath"
)

// Simulation runs the per-frame body update
// Scratch buffers are reused between frames, one Simulation per body set owner
type Simulation struct {
	Params Params
	rng    *vmath.FastRand

	prevPos   []r2.Vec
	diameters []float64
	pinned    []bool
	push      []r2.Vec
	impulse   []r2.Vec
	contacts  []Contact

	// Bounces counts wall contacts during the last tick
	Bounces int
}

// NewSimulation creates a simulation using rng for the stagnation guard
func NewSimulation(p Params, rng *vmath.FastRand) *Simulation {
	return &Simulation{Params: p, rng: rng}
}

// Tick runs one frame over bodies in place, body count never changes
// Pair collisions read the previous frame's positions so update order does not matter
// Dragged bodies are not moved, other bodies still get pushed out of them
func (s *Simulation) Tick(bodies []core.Body, width, height float64) {
	n := len(bodies)
	if n == 0 {
		return
	}
	s.reserve(n)
	p := &s.Params
	s.Bounces = 0

	for i := range bodies {
		s.prevPos[i] = bodies[i].Pos
		s.diameters[i] = bodies[i].Diameter
		s.pinned[i] = bodies[i].Dragging
		s.push[i] = r2.Vec{}
		s.impulse[i] = r2.Vec{}
	}

	// Motion: damping, integration, walls
	for i := range bodies {
		b := &bodies[i]
		if b.Dragging {
			continue
		}
		Damp(b, p)
		Integrate(b)
		if ReflectBounds(b, width, height, p.Padding, p.Restitution) {
			s.Bounces++
		}
	}

	// Pair collisions against the snapshot
	if n > 1 {
		s.contacts = FindContacts(s.prevPos, s.diameters, s.contacts)
		for _, c := range s.contacts {
			shareA, shareB := Separation(c, s.pinned[c.A], s.pinned[c.B])
			s.push[c.A] = r2.Add(s.push[c.A], r2.Scale(p.PositionCorrection, shareA))
			s.push[c.B] = r2.Add(s.push[c.B], r2.Scale(p.PositionCorrection, shareB))
			s.impulse[c.A] = r2.Add(s.impulse[c.A], r2.Scale(p.CollisionForce, shareA))
			s.impulse[c.B] = r2.Add(s.impulse[c.B], r2.Scale(p.CollisionForce, shareB))
		}
	}

	for i := range bodies {
		b := &bodies[i]
		if b.Dragging {
			continue
		}
		b.Pos = r2.Add(b.Pos, s.push[i])
		ApplyImpulse(b, s.impulse[i])

		Nudge(&b.Vel, p.StagnationSpeed, p.StagnationNudge, s.rng)
		CapSpeed(&b.Vel, p.MaxSpeed)

		if b.Settling && b.Speed() < p.SettleSpeed {
			b.Settling = false
		}

		// Collision pushes may have moved the body past a wall
		if ReflectBounds(b, width, height, p.Padding, p.Restitution) {
			s.Bounces++
		}
	}
}

func (s *Simulation) reserve(n int) {
	if cap(s.prevPos) < n {
		s.prevPos = make([]r2.Vec, n)
		s.diameters = make([]float64, n)
		s.pinned = make([]bool, n)
		s.push = make([]r2.Vec, n)
		s.impulse = make([]r2.Vec, n)
	}
	s.prevPos = s.prevPos[:n]
	s.diameters = s.diameters[:n]
	s.pinned = s.pinned[:n]
	s.push = s.push[:n]
	s.impulse = s.impulse[:n]
}

// Tick is a convenience wrapper for single-shot use
func Tick(bodies []core.Body, width, height float64, p Params, rng *vmath.FastRand) {
	NewSimulation(p, rng).Tick(bodies, width, height)
}
