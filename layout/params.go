package layout

import "github.com/lixenwraith/token-bubbles/parameter"

// Params tunes the one-shot relaxation
type Params struct {
	Padding           float64
	JitterFraction    float64
	ChargeStrength    float64
	CenterStrength    float64
	CollisionStrength float64
	CollisionGap      float64
	AlphaMin          float64
	MaxStep           float64

	MinIterations    int
	MaxIterations    int
	AreaPerIteration float64
	SeparationPasses int

	InitialSpeed  float64
	ReferenceSide float64

	Theta              float64
	BarnesHutMinBodies int
}

// DefaultParams returns the tuning from the parameter package
func DefaultParams() Params {
	return Params{
		Padding:            parameter.Padding,
		JitterFraction:     parameter.JitterFraction,
		ChargeStrength:     parameter.ChargeStrength,
		CenterStrength:     parameter.CenterStrength,
		CollisionStrength:  parameter.CollisionStrength,
		CollisionGap:       parameter.CollisionGap,
		AlphaMin:           parameter.AlphaMin,
		MaxStep:            parameter.MaxStep,
		MinIterations:      parameter.MinIterations,
		MaxIterations:      parameter.MaxIterations,
		AreaPerIteration:   parameter.AreaPerIteration,
		SeparationPasses:   parameter.SeparationPasses,
		InitialSpeed:       parameter.InitialSpeed,
		ReferenceSide:      parameter.ReferenceSide,
		Theta:              parameter.BarnesHutTheta,
		BarnesHutMinBodies: parameter.BarnesHutMinBodies,
	}
}
