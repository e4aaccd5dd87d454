package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/physics"
	"github.com/lixenwraith/token-bubbles/sizing"
	"github.com/lixenwraith/token-bubbles/vmath"
)

func changeEntities(pcts ...float64) []core.Entity {
	out := make([]core.Entity, len(pcts))
	for i, p := range pcts {
		out[i] = core.Entity{ID: fmt.Sprintf("t%02d", i), Symbol: fmt.Sprintf("T%d", i), PriceChangePct: p}
	}
	return out
}

func randomEntities(rng *vmath.FastRand, n int) []core.Entity {
	out := make([]core.Entity, n)
	for i := range out {
		out[i] = core.Entity{
			ID:             fmt.Sprintf("r%03d", i),
			PriceChangePct: rng.Signed() * 15,
			MarketCap:      math.Pow(10, 3+rng.Float64()*6),
		}
	}
	return out
}

func countOverlaps(bodies []core.Body, fraction float64) int {
	n := 0
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			tol := fraction * (bodies[i].Diameter + bodies[j].Diameter) / 2
			if core.Overlaps(&bodies[i], &bodies[j], tol) {
				n++
			}
		}
	}
	return n
}

// TestInitializeChangeScenario verifies sizes follow input order and centers do not overlap
func TestInitializeChangeScenario(t *testing.T) {
	entities := changeEntities(0, 3, 12, 35)
	s := NewSolver(DefaultParams(), vmath.NewFastRand(1234))
	bodies := s.Initialize(entities, 800, 600, sizing.ByChange)

	if len(bodies) != 4 {
		t.Fatalf("Expected 4 bodies, got %d", len(bodies))
	}
	minSize, maxSize := sizing.Band(4, core.Viewport{Width: 800, Height: 600})
	for i := range bodies {
		if bodies[i].Entity.ID != entities[i].ID {
			t.Errorf("Expected body %d to be %s, got %s", i, entities[i].ID, bodies[i].Entity.ID)
		}
		if bodies[i].Diameter < minSize || bodies[i].Diameter > maxSize {
			t.Errorf("Body %d diameter %.2f outside [%.2f, %.2f]", i, bodies[i].Diameter, minSize, maxSize)
		}
		if i > 0 && bodies[i].Diameter <= bodies[i-1].Diameter {
			t.Errorf("Expected diameter %d (%.2f) > diameter %d (%.2f)", i, bodies[i].Diameter, i-1, bodies[i-1].Diameter)
		}
		if !bodies[i].Settling {
			t.Errorf("Expected body %d to start settling", i)
		}
	}
	if n := countOverlaps(bodies, 0); n != 0 {
		t.Errorf("Expected no overlapping pairs, got %d", n)
	}
}

// TestInitializeSingleMarketCap verifies a lone body takes the band midpoint at the center
func TestInitializeSingleMarketCap(t *testing.T) {
	entities := []core.Entity{{ID: "solo", MarketCap: 5_000_000}}
	s := NewSolver(DefaultParams(), vmath.NewFastRand(5))
	bodies := s.Initialize(entities, 800, 600, sizing.ByMarketCap)

	if len(bodies) != 1 {
		t.Fatalf("Expected 1 body, got %d", len(bodies))
	}
	minSize, maxSize := sizing.Band(1, core.Viewport{Width: 800, Height: 600})
	mid := (minSize + maxSize) / 2
	if math.Abs(bodies[0].Diameter-mid) > 1e-9 {
		t.Errorf("Expected diameter %.4f, got %.4f", mid, bodies[0].Diameter)
	}
	if bodies[0].Pos.X != 400 || bodies[0].Pos.Y != 300 {
		t.Errorf("Expected center (400,300), got %v", bodies[0].Pos)
	}
}

// TestInitializeEmpty verifies zero entities give an empty, non-nil set
func TestInitializeEmpty(t *testing.T) {
	s := NewSolver(DefaultParams(), nil)
	bodies := s.Initialize(nil, 800, 600, sizing.ByChange)
	if bodies == nil || len(bodies) != 0 {
		t.Errorf("Expected empty body set, got %v", bodies)
	}
}

// TestInitializeContainment verifies every center satisfies the padded bounds
func TestInitializeContainment(t *testing.T) {
	p := DefaultParams()
	sizes := [][2]float64{{800, 600}, {320, 200}, {120, 480}, {30, 30}}
	for _, sz := range sizes {
		rng := vmath.NewFastRand(99)
		entities := randomEntities(rng, 30)
		s := NewSolver(p, rng)
		for _, mode := range []sizing.Mode{sizing.ByChange, sizing.ByMarketCap} {
			bodies := s.Initialize(entities, sz[0], sz[1], mode)
			if len(bodies) != len(entities) {
				t.Fatalf("%vx%v: expected %d bodies, got %d", sz[0], sz[1], len(entities), len(bodies))
			}
			for i := range bodies {
				b := &bodies[i]
				if !vmath.Finite(b.Pos.X) || !vmath.Finite(b.Pos.Y) || !vmath.Finite(b.Vel.X) || !vmath.Finite(b.Vel.Y) {
					t.Fatalf("%vx%v: body %d has non-finite state %v %v", sz[0], sz[1], i, b.Pos, b.Vel)
				}
				if !physics.InBounds(b, sz[0], sz[1], p.Padding) {
					t.Errorf("%vx%v %s: body %d out of bounds at %v", sz[0], sz[1], mode, i, b.Pos)
				}
			}
		}
	}
}

// TestInitializeDeterministic verifies the same seed reproduces the layout
func TestInitializeDeterministic(t *testing.T) {
	entities := changeEntities(1, -4, 9, 0.2, -25, 60, 3)

	a := NewSolver(DefaultParams(), vmath.NewFastRand(77)).Initialize(entities, 640, 480, sizing.ByChange)
	b := NewSolver(DefaultParams(), vmath.NewFastRand(77)).Initialize(entities, 640, 480, sizing.ByChange)
	c := NewSolver(DefaultParams(), vmath.NewFastRand(78)).Initialize(entities, 640, 480, sizing.ByChange)

	for i := range a {
		if a[i].Pos != b[i].Pos || a[i].Vel != b[i].Vel {
			t.Errorf("Expected body %d reproduced, got %v/%v vs %v/%v", i, a[i].Pos, a[i].Vel, b[i].Pos, b[i].Vel)
		}
		// Sizes never depend on the random source
		if a[i].Diameter != c[i].Diameter {
			t.Errorf("Expected diameter %d stable across seeds, got %.4f vs %.4f", i, a[i].Diameter, c[i].Diameter)
		}
	}
}

// TestInitializeBarnesHut verifies the tree path on larger sets
func TestInitializeBarnesHut(t *testing.T) {
	p := DefaultParams()
	rng := vmath.NewFastRand(2024)
	entities := randomEntities(rng, p.BarnesHutMinBodies+16)
	bodies := NewSolver(p, rng).Initialize(entities, 1000, 700, sizing.ByChange)

	if len(bodies) != len(entities) {
		t.Fatalf("Expected %d bodies, got %d", len(entities), len(bodies))
	}
	for i := range bodies {
		if !physics.InBounds(&bodies[i], 1000, 700, p.Padding) {
			t.Errorf("Body %d out of bounds at %v", i, bodies[i].Pos)
		}
	}
	if n := countOverlaps(bodies, 0.05); n != 0 {
		t.Errorf("Expected no significant overlaps, got %d", n)
	}
}

// TestTickPreservesSeparation verifies frames do not add overlapping pairs to a fresh layout
func TestTickPreservesSeparation(t *testing.T) {
	rng := vmath.NewFastRand(31)
	entities := randomEntities(rng, 20)
	bodies := NewSolver(DefaultParams(), rng).Initialize(entities, 800, 600, sizing.ByChange)

	const tolerance = 0.05
	before := countOverlaps(bodies, tolerance)

	sim := physics.NewSimulation(physics.DefaultParams(), rng)
	for frame := 0; frame < 300; frame++ {
		sim.Tick(bodies, 800, 600)
	}

	if after := countOverlaps(bodies, tolerance); after > before {
		t.Errorf("Expected at most %d overlapping pairs after 300 frames, got %d", before, after)
	}
}

// TestIterationsScaleWithArea verifies larger containers get at least as many iterations
func TestIterationsScaleWithArea(t *testing.T) {
	s := NewSolver(DefaultParams(), nil)
	small := s.Iterations(core.Viewport{Width: 100, Height: 100})
	large := s.Iterations(core.Viewport{Width: 1600, Height: 900})

	if small != s.Params.MinIterations {
		t.Errorf("Expected small container to use %d iterations, got %d", s.Params.MinIterations, small)
	}
	if large < small || large > s.Params.MaxIterations {
		t.Errorf("Expected large iterations in [%d, %d], got %d", small, s.Params.MaxIterations, large)
	}
}
