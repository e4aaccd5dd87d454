package parameter

// Size band relative to the per-body area budget sqrt(area/count)
const (
	MinSizeFactor  = 0.35
	MaxSizeFactor  = 0.95
	BaseSizeFactor = 0.5

	// MinDiameter keeps bodies visible in tiny containers
	MinDiameter = 2.0

	// DegenerateRatio is the market-cap ratio used when min == max
	DegenerateRatio = 0.5
)

// ChangeBand maps |price change| below Below percent to a size multiplier
type ChangeBand struct {
	Below      float64
	Multiplier float64
}

// ChangeBands must stay sorted with strictly increasing multipliers
// Exactly 0% is handled separately by ZeroChangeMultiplier
var ChangeBands = []ChangeBand{
	{Below: 0.5, Multiplier: 0.8},
	{Below: 1, Multiplier: 0.9},
	{Below: 2, Multiplier: 1.0},
	{Below: 5, Multiplier: 1.1},
	{Below: 10, Multiplier: 1.25},
	{Below: 20, Multiplier: 1.4},
	{Below: 40, Multiplier: 1.6},
}

const (
	ZeroChangeMultiplier = 0.7
	TopChangeMultiplier  = 1.8
)
