package core

import (
	"fmt"
	"strings"
)

// Timeframe is the window the price change is measured over
type Timeframe uint8

const (
	Timeframe5m Timeframe = iota
	Timeframe1h
	Timeframe6h
	Timeframe24h
)

// Timeframes lists every timeframe in key-binding order
var Timeframes = []Timeframe{Timeframe5m, Timeframe1h, Timeframe6h, Timeframe24h}

// String returns the display label
func (t Timeframe) String() string {
	switch t {
	case Timeframe5m:
		return "5m"
	case Timeframe1h:
		return "1h"
	case Timeframe6h:
		return "6h"
	default:
		return "24h"
	}
}

// Field returns the DexScreener priceChange key for the timeframe
func (t Timeframe) Field() string {
	switch t {
	case Timeframe5m:
		return "m5"
	case Timeframe1h:
		return "h1"
	case Timeframe6h:
		return "h6"
	default:
		return "h24"
	}
}

// ParseTimeframe accepts labels ("1h") and API keys ("h1")
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "5m", "m5":
		return Timeframe5m, nil
	case "1h", "h1":
		return Timeframe1h, nil
	case "6h", "h6":
		return Timeframe6h, nil
	case "24h", "h24", "1d":
		return Timeframe24h, nil
	}
	return Timeframe24h, fmt.Errorf("unknown timeframe %q", s)
}

// TimeframeAt returns the timeframe at key index i, ok is false when out of range
func TimeframeAt(i int) (Timeframe, bool) {
	if i < 0 || i >= len(Timeframes) {
		return Timeframe24h, false
	}
	return Timeframes[i], true
}
