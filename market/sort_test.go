package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/token-bubbles/core"
)

func sortFixture() []core.Entity {
	return []core.Entity{
		{ID: "a", Symbol: "beta", MarketCap: 300, PriceChangePct: -2},
		{ID: "b", Symbol: "Alpha", MarketCap: 100, PriceChangePct: 9},
		{ID: "c", Symbol: "gamma", MarketCap: 300, PriceChangePct: 0},
	}
}

func ids(entities []core.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestSortMarketCapDescStable(t *testing.T) {
	e := sortFixture()
	Sort(e, SortMarketCap, false)
	assert.Equal(t, []string{"a", "c", "b"}, ids(e))
}

func TestSortSymbolCaseInsensitive(t *testing.T) {
	e := sortFixture()
	Sort(e, SortSymbol, true)
	assert.Equal(t, []string{"b", "a", "c"}, ids(e))
}

func TestSortChangeAsc(t *testing.T) {
	e := sortFixture()
	Sort(e, SortChange, true)
	assert.Equal(t, []string{"a", "c", "b"}, ids(e))
}

func TestSortKeyCycleAndParse(t *testing.T) {
	k := SortMarketCap
	seen := map[SortKey]bool{}
	for i := 0; i < int(sortKeyCount); i++ {
		seen[k] = true
		k = k.Next()
	}
	assert.Equal(t, SortMarketCap, k)
	assert.Len(t, seen, int(sortKeyCount))

	for _, name := range []string{"symbol", "chain", "price", "change", "mcap", "volume", "liquidity"} {
		got, err := ParseSortKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, got.String())
	}
	got, err := ParseSortKey("Vol")
	require.NoError(t, err)
	assert.Equal(t, SortVolume, got)

	_, err = ParseSortKey("height")
	assert.Error(t, err)
}
