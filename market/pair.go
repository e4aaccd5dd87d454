package market

import (
	"strings"

	"github.com/lixenwraith/token-bubbles/core"
)

// TokensResponse is the DexScreener /dex/tokens payload
type TokensResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Token is the nested base or quote token
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Pair is one DexScreener trading pair
// Older payloads carry symbol, name and address flat instead of under baseToken
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	URL         string `json:"url"`
	PairAddress string `json:"pairAddress"`

	BaseToken  *Token `json:"baseToken"`
	QuoteToken *Token `json:"quoteToken"`

	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Address string `json:"address"`

	PriceUSD    Price             `json:"priceUsd"`
	PriceChange map[string]Number `json:"priceChange"`
	Volume      map[string]Number `json:"volume"`
	Liquidity   struct {
		USD Number `json:"usd"`
	} `json:"liquidity"`
	MarketCap Number `json:"marketCap"`
	FDV       Number `json:"fdv"`
}

// Normalize maps a pair to the canonical Entity for timeframe tf
// ref supplies the identity, falling back to the pair when empty
func Normalize(p Pair, ref TokenRef, tf core.Timeframe) core.Entity {
	symbol, name, address := p.Symbol, p.Name, p.Address
	if p.BaseToken != nil {
		symbol = firstNonEmpty(p.BaseToken.Symbol, symbol)
		name = firstNonEmpty(p.BaseToken.Name, name)
		address = firstNonEmpty(p.BaseToken.Address, address)
	}

	chain := firstNonEmpty(ref.Chain, p.ChainID)
	contract := firstNonEmpty(ref.Contract, address)

	mcap := p.MarketCap.Float64()
	if mcap <= 0 {
		mcap = p.FDV.Float64()
	}

	return core.Entity{
		ID:             core.EntityID(chain, contract),
		Symbol:         strings.TrimSpace(symbol),
		Name:           strings.TrimSpace(name),
		Price:          p.PriceUSD.Float64(),
		PriceUSD:       p.PriceUSD.Value,
		PriceChangePct: p.PriceChange[tf.Field()].Float64(),
		MarketCap:      mcap,
		Volume24h:      p.Volume["h24"].Float64(),
		Liquidity:      p.Liquidity.USD.Float64(),
		Chain:          firstNonEmpty(p.ChainID, ref.Chain),
		Contract:       contract,
		PairAddress:    p.PairAddress,
		DexID:          p.DexID,
		URL:            p.URL,
	}
}

// Displayable reports whether the entity has a usable symbol
func Displayable(e core.Entity) bool {
	return e.Symbol != "" && !strings.EqualFold(e.Symbol, "unknown")
}

// pickPair returns the first pair on chain, or the first pair overall
func pickPair(pairs []Pair, chain string) (Pair, bool) {
	if len(pairs) == 0 {
		return Pair{}, false
	}
	for _, p := range pairs {
		if chain != "" && strings.EqualFold(p.ChainID, chain) {
			return p, true
		}
	}
	return pairs[0], true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
