package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/vmath"
)

func testBodies(rng *vmath.FastRand, n int, width, height float64) []core.Body {
	bodies := make([]core.Body, n)
	for i := range bodies {
		bodies[i] = core.Body{
			Entity:   core.Entity{ID: string(rune('a' + i))},
			Pos:      r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			Vel:      r2.Vec{X: rng.Signed() * 20, Y: rng.Signed() * 20},
			Diameter: 20 + rng.Float64()*40,
			Settling: i%2 == 0,
		}
	}
	return bodies
}

// TestTickContainment verifies every center stays inside the padded container
func TestTickContainment(t *testing.T) {
	rng := vmath.NewFastRand(42)
	p := DefaultParams()
	width, height := 640.0, 480.0
	bodies := testBodies(rng, 24, width, height)
	sim := NewSimulation(p, rng)

	for frame := 0; frame < 1000; frame++ {
		sim.Tick(bodies, width, height)
		for i := range bodies {
			if !InBounds(&bodies[i], width, height, p.Padding) {
				t.Fatalf("Frame %d: body %d out of bounds at %v (d=%.2f)", frame, i, bodies[i].Pos, bodies[i].Diameter)
			}
		}
	}
}

// TestTickCountUnchanged verifies ticks never add or remove bodies
func TestTickCountUnchanged(t *testing.T) {
	rng := vmath.NewFastRand(7)
	bodies := testBodies(rng, 10, 300, 300)
	ids := make([]string, len(bodies))
	for i := range bodies {
		ids[i] = bodies[i].Entity.ID
	}

	sim := NewSimulation(DefaultParams(), rng)
	for frame := 0; frame < 100; frame++ {
		sim.Tick(bodies, 300, 300)
	}

	if len(bodies) != len(ids) {
		t.Fatalf("Expected %d bodies, got %d", len(ids), len(bodies))
	}
	for i := range bodies {
		if bodies[i].Entity.ID != ids[i] {
			t.Errorf("Expected body %d to keep id %q, got %q", i, ids[i], bodies[i].Entity.ID)
		}
	}
}

// TestTickEmpty verifies an empty set is a no-op
func TestTickEmpty(t *testing.T) {
	sim := NewSimulation(DefaultParams(), vmath.NewFastRand(1))
	sim.Tick(nil, 100, 100)
	sim.Tick([]core.Body{}, 100, 100)
	if sim.Bounces != 0 {
		t.Errorf("Expected no bounces, got %d", sim.Bounces)
	}
}

// TestTickDraggedBodyPinned verifies the dragged body is left alone while its partner is pushed
func TestTickDraggedBodyPinned(t *testing.T) {
	bodies := []core.Body{
		{Pos: r2.Vec{X: 100, Y: 100}, Vel: r2.Vec{X: 5, Y: 5}, Diameter: 40, Dragging: true},
		{Pos: r2.Vec{X: 110, Y: 100}, Diameter: 40},
	}

	sim := NewSimulation(DefaultParams(), vmath.NewFastRand(3))
	sim.Tick(bodies, 400, 400)

	if bodies[0].Pos != (r2.Vec{X: 100, Y: 100}) {
		t.Errorf("Expected dragged body to stay at (100,100), got %v", bodies[0].Pos)
	}
	if bodies[0].Vel != (r2.Vec{X: 5, Y: 5}) {
		t.Errorf("Expected dragged body velocity untouched, got %v", bodies[0].Vel)
	}
	if bodies[1].Pos.X <= 110 {
		t.Errorf("Expected free body pushed right of 110, got %.3f", bodies[1].Pos.X)
	}
	if bodies[1].Vel.X <= 0 {
		t.Errorf("Expected free body to gain rightward velocity, got %.3f", bodies[1].Vel.X)
	}
}

// TestTickSnapshotSymmetric verifies pair response does not depend on slice order
func TestTickSnapshotSymmetric(t *testing.T) {
	a := core.Body{Pos: r2.Vec{X: 100, Y: 100}, Diameter: 40}
	b := core.Body{Pos: r2.Vec{X: 120, Y: 100}, Diameter: 40}

	p := DefaultParams()
	forward := []core.Body{a, b}
	reverse := []core.Body{b, a}
	Tick(forward, 400, 400, p, nil)
	Tick(reverse, 400, 400, p, nil)

	if forward[0].Pos != reverse[1].Pos || forward[1].Pos != reverse[0].Pos {
		t.Errorf("Expected order-independent result, got %v/%v vs %v/%v",
			forward[0].Pos, forward[1].Pos, reverse[1].Pos, reverse[0].Pos)
	}
	if forward[0].Pos.X >= 100 || forward[1].Pos.X <= 120 {
		t.Errorf("Expected pair pushed apart, got %v and %v", forward[0].Pos, forward[1].Pos)
	}
}

// TestReflectBoundsRestitution verifies wall bounce inverts and scales velocity
func TestReflectBoundsRestitution(t *testing.T) {
	p := DefaultParams()
	b := core.Body{Pos: r2.Vec{X: 181, Y: 100}, Vel: r2.Vec{X: 5}, Diameter: 20}
	bodies := []core.Body{b}
	sim := NewSimulation(p, nil)
	sim.Tick(bodies, 200, 200)

	_, hi := Bounds(200, 10, p.Padding)
	if bodies[0].Pos.X != hi {
		t.Errorf("Expected x clamped to %.2f, got %.4f", hi, bodies[0].Pos.X)
	}
	expected := -5 * p.DampingSteady * p.Restitution
	if math.Abs(bodies[0].Vel.X-expected) > 1e-9 {
		t.Errorf("Expected vx %.4f, got %.4f", expected, bodies[0].Vel.X)
	}
	if sim.Bounces == 0 {
		t.Error("Expected bounce to be counted")
	}
}

// TestReflectBoundsAwayFromWall verifies velocity leaving the wall is kept
func TestReflectBoundsAwayFromWall(t *testing.T) {
	b := core.Body{Pos: r2.Vec{X: -5, Y: 50}, Vel: r2.Vec{X: 3}, Diameter: 10}
	if !ReflectBoundsX(&b, 100, 0, 0.5) {
		t.Fatal("Expected clamp to report contact")
	}
	if b.Pos.X != 5 {
		t.Errorf("Expected x=5, got %.2f", b.Pos.X)
	}
	if b.Vel.X != 3 {
		t.Errorf("Expected outward velocity kept at 3, got %.2f", b.Vel.X)
	}
}

// TestContainCenterOversized verifies a body larger than the container sits on the midpoint
func TestContainCenterOversized(t *testing.T) {
	got := ContainCenter(r2.Vec{X: 3, Y: 90}, 50, 40, 200, 8)
	if got.X != 20 {
		t.Errorf("Expected x collapsed to midpoint 20, got %.2f", got.X)
	}
	if got.Y != 90 {
		t.Errorf("Expected y untouched at 90, got %.2f", got.Y)
	}
}

// TestCapSpeed verifies magnitude limiting and non-finite reset
func TestCapSpeed(t *testing.T) {
	v := r2.Vec{X: 30, Y: 40}
	if !CapSpeed(&v, 10) {
		t.Error("Expected clamp")
	}
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Expected (6,8), got %v", v)
	}

	v = r2.Vec{X: 1, Y: 1}
	if CapSpeed(&v, 10) {
		t.Error("Expected no clamp under the limit")
	}

	v = r2.Vec{X: math.NaN(), Y: 1}
	CapSpeed(&v, 10)
	if v != (r2.Vec{}) {
		t.Errorf("Expected NaN velocity reset to zero, got %v", v)
	}
}

// TestNudgeStagnant verifies only slow bodies are perturbed
func TestNudgeStagnant(t *testing.T) {
	rng := vmath.NewFastRand(9)

	fast := r2.Vec{X: 1}
	if Nudge(&fast, 0.1, 0.1, rng) {
		t.Error("Expected moving body to be left alone")
	}

	slow := r2.Vec{}
	if !Nudge(&slow, 0.1, 0.1, rng) {
		t.Error("Expected stagnant body to be nudged")
	}
	if math.Abs(slow.X) > 0.1 || math.Abs(slow.Y) > 0.1 {
		t.Errorf("Expected nudge within bound 0.1, got %v", slow)
	}
}

// TestSettlingClears verifies the settling flag drops once the body slows
func TestSettlingClears(t *testing.T) {
	bodies := []core.Body{{Pos: r2.Vec{X: 100, Y: 100}, Vel: r2.Vec{X: 0.3}, Diameter: 20, Settling: true}}
	sim := NewSimulation(DefaultParams(), nil)
	for frame := 0; frame < 60 && bodies[0].Settling; frame++ {
		sim.Tick(bodies, 400, 400)
	}
	if bodies[0].Settling {
		t.Errorf("Expected settling cleared, speed %.3f", bodies[0].Speed())
	}
}

// TestParamsValidate rejects tunings that amplify or reverse velocity
func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("Expected default params to be valid, got %v", err)
	}

	cases := map[string]func(p *Params){
		"restitution at one":   func(p *Params) { p.Restitution = 1 },
		"restitution negative": func(p *Params) { p.Restitution = -0.2 },
		"steady above one":     func(p *Params) { p.DampingSteady = 1.01 },
		"settling above one":   func(p *Params) { p.DampingSettling = 1.2 },
		"settling zero":        func(p *Params) { p.DampingSettling = 0 },
		"settling weaker":      func(p *Params) { p.DampingSettling = p.DampingSteady + 0.001 },
		"max speed negative":   func(p *Params) { p.MaxSpeed = -5 },
		"max speed zero":       func(p *Params) { p.MaxSpeed = 0 },
	}
	for name, mutate := range cases {
		p := DefaultParams()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}
