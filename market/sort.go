package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/token-bubbles/core"
)

// SortKey selects the table column entities are ordered by
type SortKey uint8

const (
	SortMarketCap SortKey = iota
	SortSymbol
	SortChain
	SortPrice
	SortChange
	SortVolume
	SortLiquidity
	sortKeyCount
)

var sortKeyNames = [...]string{
	SortMarketCap: "mcap",
	SortSymbol:    "symbol",
	SortChain:     "chain",
	SortPrice:     "price",
	SortChange:    "change",
	SortVolume:    "volume",
	SortLiquidity: "liquidity",
}

func (k SortKey) String() string {
	if k >= sortKeyCount {
		return "unknown"
	}
	return sortKeyNames[k]
}

// Next cycles to the following column
func (k SortKey) Next() SortKey {
	return (k + 1) % sortKeyCount
}

// ParseSortKey accepts column names as printed by String
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "marketcap", "cap":
		return SortMarketCap, nil
	case "pct":
		return SortChange, nil
	case "vol":
		return SortVolume, nil
	case "liq":
		return SortLiquidity, nil
	}
	for k, name := range sortKeyNames {
		if name == s {
			return SortKey(k), nil
		}
	}
	return SortMarketCap, fmt.Errorf("unknown sort key %q", s)
}

// Sort orders entities in place by key, stable so equal rows keep list order
// Strings compare case-insensitively
func Sort(entities []core.Entity, key SortKey, asc bool) {
	sort.SliceStable(entities, func(i, j int) bool {
		c := compare(&entities[i], &entities[j], key)
		if asc {
			return c < 0
		}
		return c > 0
	})
}

func compare(a, b *core.Entity, key SortKey) int {
	switch key {
	case SortSymbol:
		return strings.Compare(strings.ToLower(a.Symbol), strings.ToLower(b.Symbol))
	case SortChain:
		return strings.Compare(strings.ToLower(a.Chain), strings.ToLower(b.Chain))
	case SortPrice:
		return cmpFloat(a.Price, b.Price)
	case SortChange:
		return cmpFloat(a.PriceChangePct, b.PriceChangePct)
	case SortVolume:
		return cmpFloat(a.Volume24h, b.Volume24h)
	case SortLiquidity:
		return cmpFloat(a.Liquidity, b.Liquidity)
	default:
		return cmpFloat(a.MarketCap, b.MarketCap)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
