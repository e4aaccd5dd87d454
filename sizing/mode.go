package sizing

import "fmt"

// Mode selects the metric encoded by bubble size
type Mode uint8

const (
	// ByChange sizes by |price change| over the active timeframe
	ByChange Mode = iota
	// ByMarketCap sizes by market cap on a log scale across the current set
	ByMarketCap
)

func (m Mode) String() string {
	switch m {
	case ByMarketCap:
		return "mcap"
	default:
		return "change"
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ByChange {
		return ByMarketCap
	}
	return ByChange
}

// ParseMode accepts "change" and "mcap" plus a few aliases
func ParseMode(s string) (Mode, error) {
	switch s {
	case "change", "pct", "bychange", "":
		return ByChange, nil
	case "mcap", "marketcap", "cap", "bymarketcap":
		return ByMarketCap, nil
	}
	return ByChange, fmt.Errorf("unknown sizing mode %q", s)
}
