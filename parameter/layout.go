package parameter

// Initial force relaxation
const (
	// JitterFraction of a grid cell used for random seed offsets
	JitterFraction = 0.3

	// ChargeStrength scales inverse-distance repulsion between every body pair
	ChargeStrength = 250.0

	// CenterStrength is the fraction of the offset to the container center removed per iteration
	CenterStrength = 0.02

	// CollisionStrength is the fraction of overlap resolved per relaxation iteration
	CollisionStrength = 0.7

	// CollisionGap is extra spacing the relaxation keeps between bubbles
	CollisionGap = 4.0

	// AlphaMin is the cooling floor, alpha decays from 1 to AlphaMin over the run
	AlphaMin = 0.001

	// MaxStep caps per-iteration displacement from charge and centering
	MaxStep = 40.0

	// Relaxation iteration budget scales with container area
	MinIterations    = 120
	MaxIterations    = 400
	AreaPerIteration = 2000.0

	// SeparationPasses bounds the final overlap clean-up after relaxation
	SeparationPasses = 200

	// InitialSpeed is the random launch speed for a ReferenceSide container
	InitialSpeed  = 0.3
	ReferenceSide = 600.0

	// Barnes-Hut approximation for charge
	BarnesHutTheta     = 0.5
	BarnesHutMinBodies = 64
)
