// Package layout computes the initial, non-overlapping placement of a fresh body set.
//
// The solve runs synchronously before the first frame of a new set:
// grid seeding with jitter, a fixed number of relaxation iterations
// (charge repulsion, weak centering, collision constraint), a separation
// clean-up, then containment and a small random launch velocity.
package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/physics"
	"github.com/lixenwraith/token-bubbles/sizing"
	"github.com/lixenwraith/token-bubbles/vmath"
)

// Solver produces body sets, the random source is owned by the solver
type Solver struct {
	Params Params
	Rand   *vmath.FastRand
}

// NewSolver creates a solver, a nil rng falls back to a fixed seed
func NewSolver(p Params, rng *vmath.FastRand) *Solver {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Solver{Params: p, Rand: rng}
}

// particle adapts a body position to barneshut.Particle2
type particle struct {
	pos r2.Vec
}

func (p *particle) Coord2() r2.Vec { return p.pos }
func (p *particle) Mass() float64  { return 1 }

// Iterations returns the relaxation budget for a container, larger areas get more
func (s *Solver) Iterations(vp core.Viewport) int {
	p := &s.Params
	n := p.MinIterations
	if p.AreaPerIteration > 0 {
		n = int(vp.Area() / p.AreaPerIteration)
	}
	if n < p.MinIterations {
		n = p.MinIterations
	}
	if n > p.MaxIterations {
		n = p.MaxIterations
	}
	return n
}

// Initialize builds one body per entity, preserving input order
// Zero entities return an empty set without running the solve
func (s *Solver) Initialize(entities []core.Entity, width, height float64, mode sizing.Mode) []core.Body {
	if len(entities) == 0 {
		return []core.Body{}
	}
	vp := core.Viewport{Width: width, Height: height}
	sizes := sizing.Sizes(entities, mode, vp)

	bodies := make([]core.Body, len(entities))
	for i, e := range entities {
		bodies[i] = core.Body{
			Entity:   e,
			Diameter: sizes[i],
			Settling: true,
		}
	}

	if len(bodies) == 1 {
		bodies[0].Pos = vp.Center()
	} else {
		s.seed(bodies, vp)
		s.relax(bodies, vp)
		s.separate(bodies, vp)
	}

	for i := range bodies {
		b := &bodies[i]
		b.Pos = physics.ContainCenter(b.Pos, b.Radius(), width, height, s.Params.Padding)
		b.Vel = s.launchVelocity(vp)
	}
	return bodies
}

// seed places bodies on a grid matching the container aspect, with jitter
func (s *Solver) seed(bodies []core.Body, vp core.Viewport) {
	n := len(bodies)
	cols := int(math.Ceil(math.Sqrt(float64(n) * vp.Aspect())))
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	cellW := vp.Width / float64(cols)
	cellH := vp.Height / float64(rows)
	for i := range bodies {
		col := i % cols
		row := i / cols
		bodies[i].Pos = r2.Vec{
			X: (float64(col)+0.5)*cellW + s.Rand.Jitter(cellW*s.Params.JitterFraction),
			Y: (float64(row)+0.5)*cellH + s.Rand.Jitter(cellH*s.Params.JitterFraction),
		}
	}
}

// relax runs the cooled force iterations
func (s *Solver) relax(bodies []core.Body, vp core.Viewport) {
	p := &s.Params
	n := len(bodies)
	iters := s.Iterations(vp)
	center := vp.Center()

	particles := make([]particle, n)
	set := make([]barneshut.Particle2, n)
	for i := range particles {
		set[i] = &particles[i]
	}
	plane := barneshut.Plane{Particles: set}
	useTree := n >= p.BarnesHutMinBodies

	inflated := make([]float64, n)
	for i := range bodies {
		inflated[i] = bodies[i].Diameter + 2*p.CollisionGap
	}
	pos := make([]r2.Vec, n)
	var contacts []physics.Contact

	alpha := 1.0
	decay := 1 - math.Pow(p.AlphaMin, 1/float64(iters))

	for it := 0; it < iters; it++ {
		for i := range bodies {
			particles[i].pos = bodies[i].Pos
		}
		if useTree {
			if err := plane.Reset(); err != nil {
				// Coincident particles, fall back to the quadratic walk
				plane = barneshut.Plane{Particles: set}
				useTree = false
			}
		}

		for i := range bodies {
			step := plane.ForceOn(set[i], p.Theta, s.repulsion)
			step = r2.Add(step, r2.Scale(p.CenterStrength, r2.Sub(center, bodies[i].Pos)))
			step = r2.Scale(alpha, step)
			physics.CapSpeed(&step, p.MaxStep)
			pos[i] = r2.Add(bodies[i].Pos, step)
		}

		contacts = physics.FindContacts(pos, inflated, contacts)
		for _, c := range contacts {
			shift := r2.Scale(c.Penetration*p.CollisionStrength/2, c.Normal)
			pos[c.A] = r2.Sub(pos[c.A], shift)
			pos[c.B] = r2.Add(pos[c.B], shift)
		}

		for i := range bodies {
			bodies[i].Pos = physics.ContainCenter(pos[i], bodies[i].Radius(), vp.Width, vp.Height, p.Padding)
		}
		alpha *= 1 - decay
	}
}

// repulsion is an inverse-distance push away from the other particle
// v points from the particle being evaluated to the other one
func (s *Solver) repulsion(_, _ barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
	d2 := v.X*v.X + v.Y*v.Y
	if d2 < 1e-12 {
		return r2.Vec{}
	}
	return r2.Scale(-s.Params.ChargeStrength*m1*m2/d2, v)
}

// separate resolves remaining overlaps fully, stopping once none are left
func (s *Solver) separate(bodies []core.Body, vp core.Viewport) {
	p := &s.Params
	n := len(bodies)
	pos := make([]r2.Vec, n)
	diam := make([]float64, n)
	for i := range bodies {
		diam[i] = bodies[i].Diameter + 1 // One unit of clearance
	}
	var contacts []physics.Contact

	for pass := 0; pass < p.SeparationPasses; pass++ {
		for i := range bodies {
			pos[i] = bodies[i].Pos
		}
		contacts = physics.FindContacts(pos, diam, contacts)
		if len(contacts) == 0 {
			return
		}
		for _, c := range contacts {
			shift := r2.Scale(c.Penetration/2, c.Normal)
			pos[c.A] = r2.Sub(pos[c.A], shift)
			pos[c.B] = r2.Add(pos[c.B], shift)
		}
		for i := range bodies {
			bodies[i].Pos = physics.ContainCenter(pos[i], bodies[i].Radius(), vp.Width, vp.Height, p.Padding)
		}
	}
}

// launchVelocity returns a random velocity scaled to the container size
func (s *Solver) launchVelocity(vp core.Viewport) r2.Vec {
	p := &s.Params
	scale := p.InitialSpeed
	if p.ReferenceSide > 0 {
		scale *= vp.MinSide() / p.ReferenceSide
	}
	angle := s.Rand.Float64() * 2 * math.Pi
	mag := scale * (0.5 + 0.5*s.Rand.Float64())
	return r2.Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}
