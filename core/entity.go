package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entity is one market token as the simulation sees it
// Only ID, Symbol, PriceChangePct and MarketCap drive layout and sizing, the rest is display data
type Entity struct {
	ID     string // Stable identity, "chain:contract" lower-cased
	Symbol string
	Name   string

	Price          float64
	PriceUSD       decimal.Decimal // Exact price as reported, for formatting
	PriceChangePct float64         // Percent change over the active timeframe
	MarketCap      float64

	Volume24h float64
	Liquidity float64

	Chain       string
	Contract    string
	PairAddress string
	DexID       string
	URL         string
}

// EntityID builds the canonical identity for a chain/contract pair
func EntityID(chain, contract string) string {
	return strings.ToLower(strings.TrimSpace(chain)) + ":" + strings.ToLower(strings.TrimSpace(contract))
}
