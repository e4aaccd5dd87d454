package physics

import (
	"fmt"

	"github.com/lixenwraith/token-bubbles/parameter"
)

// Params holds the per-frame tuning of the simulation
type Params struct {
	Padding            float64
	DampingSettling    float64
	DampingSteady      float64
	Restitution        float64
	CollisionForce     float64
	PositionCorrection float64
	StagnationSpeed    float64
	StagnationNudge    float64
	SettleSpeed        float64
	MaxSpeed           float64
}

// DefaultParams returns the tuning from the parameter package
func DefaultParams() Params {
	return Params{
		Padding:            parameter.Padding,
		DampingSettling:    parameter.DampingSettling,
		DampingSteady:      parameter.DampingSteady,
		Restitution:        parameter.Restitution,
		CollisionForce:     parameter.CollisionForce,
		PositionCorrection: parameter.PositionCorrection,
		StagnationSpeed:    parameter.StagnationSpeed,
		StagnationNudge:    parameter.StagnationNudge,
		SettleSpeed:        parameter.SettleSpeed,
		MaxSpeed:           parameter.MaxSpeed,
	}
}

// Validate rejects tunings that add energy or reverse motion
// Damping multiplies velocity each frame, settling must damp at least as hard as steady
func (p Params) Validate() error {
	if p.DampingSteady <= 0 || p.DampingSteady > 1 {
		return fmt.Errorf("damping_steady %g out of range (0,1]", p.DampingSteady)
	}
	if p.DampingSettling <= 0 || p.DampingSettling > 1 {
		return fmt.Errorf("damping_settling %g out of range (0,1]", p.DampingSettling)
	}
	if p.DampingSettling > p.DampingSteady {
		return fmt.Errorf("damping_settling %g weaker than damping_steady %g", p.DampingSettling, p.DampingSteady)
	}
	if p.Restitution < 0 || p.Restitution >= 1 {
		return fmt.Errorf("restitution %g out of range [0,1)", p.Restitution)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("max_speed %g must be positive", p.MaxSpeed)
	}
	return nil
}
