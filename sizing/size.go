// Package sizing maps token metrics to bubble diameters.
//
// All functions are pure: the same entity set, mode and viewport always
// produce the same diameters. Diameters never leave the band returned by
// Band, whatever the metric holds (zero, NaN, ±Inf or extreme values).
package sizing

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/parameter"
	"github.com/lixenwraith/token-bubbles/vmath"
)

// Band returns the [minSize, maxSize] diameter band for count bodies in vp
func Band(count int, vp core.Viewport) (minSize, maxSize float64) {
	budget := areaBudget(count, vp)
	minSize = budget * parameter.MinSizeFactor
	maxSize = budget * parameter.MaxSizeFactor

	// A body wider than the usable short side could never be contained
	if limit := vp.MinSide() - 2*parameter.Padding; maxSize > limit {
		maxSize = limit
	}
	if maxSize < parameter.MinDiameter {
		maxSize = parameter.MinDiameter
	}
	if minSize > maxSize {
		minSize = maxSize
	}
	if minSize < parameter.MinDiameter {
		minSize = parameter.MinDiameter
	}
	return minSize, maxSize
}

// BaseSize is the nominal diameter a 2% move maps to
func BaseSize(count int, vp core.Viewport) float64 {
	return areaBudget(count, vp) * parameter.BaseSizeFactor
}

// areaBudget is the side of the square each body may claim
func areaBudget(count int, vp core.Viewport) float64 {
	if count < 1 {
		count = 1
	}
	return math.Sqrt(vp.Area() / float64(count))
}

// Size returns the diameter of e within the set all
func Size(e core.Entity, all []core.Entity, mode Mode, vp core.Viewport) float64 {
	count := len(all)
	if count == 0 {
		count = 1
	}
	minSize, maxSize := Band(count, vp)

	var d float64
	switch mode {
	case ByMarketCap:
		lo, hi, ok := logRange(all)
		d = vmath.Lerp(minSize, maxSize, capRatio(e.MarketCap, lo, hi, ok))
	default:
		d = BaseSize(count, vp) * ChangeMultiplier(e.PriceChangePct)
	}
	return clampSize(d, minSize, maxSize)
}

// Sizes returns diameters for every entity, in input order
func Sizes(all []core.Entity, mode Mode, vp core.Viewport) []float64 {
	out := make([]float64, len(all))
	if len(all) == 0 {
		return out
	}
	minSize, maxSize := Band(len(all), vp)
	base := BaseSize(len(all), vp)
	lo, hi, ok := logRange(all)

	for i, e := range all {
		var d float64
		if mode == ByMarketCap {
			d = vmath.Lerp(minSize, maxSize, capRatio(e.MarketCap, lo, hi, ok))
		} else {
			d = base * ChangeMultiplier(e.PriceChangePct)
		}
		out[i] = clampSize(d, minSize, maxSize)
	}
	return out
}

// ChangeMultiplier buckets |pct| into the monotonic band table
func ChangeMultiplier(pct float64) float64 {
	mag := math.Abs(vmath.OrZero(pct))
	if mag == 0 {
		return parameter.ZeroChangeMultiplier
	}
	for _, band := range parameter.ChangeBands {
		if mag < band.Below {
			return band.Multiplier
		}
	}
	return parameter.TopChangeMultiplier
}

// CapRatio returns the log-scale position of value within the set's observed range
func CapRatio(value float64, all []core.Entity) float64 {
	lo, hi, ok := logRange(all)
	return capRatio(value, lo, hi, ok)
}

func capRatio(value, lo, hi float64, ok bool) float64 {
	if !vmath.Finite(value) || value <= 0 || !ok {
		return 0
	}
	if hi == lo {
		return parameter.DegenerateRatio
	}
	return vmath.Clamp((math.Log(value)-lo)/(hi-lo), 0, 1)
}

// logRange returns ln(min) and ln(max) over positive finite market caps
func logRange(all []core.Entity) (lo, hi float64, ok bool) {
	logs := make([]float64, 0, len(all))
	for _, e := range all {
		if vmath.Finite(e.MarketCap) && e.MarketCap > 0 {
			logs = append(logs, math.Log(e.MarketCap))
		}
	}
	if len(logs) == 0 {
		return 0, 0, false
	}
	return floats.Min(logs), floats.Max(logs), true
}

func clampSize(d, minSize, maxSize float64) float64 {
	if !vmath.Finite(d) {
		return minSize
	}
	return vmath.Clamp(d, minSize, maxSize)
}
