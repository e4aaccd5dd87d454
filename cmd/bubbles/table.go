package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/token-bubbles/config"
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/market"
	"github.com/lixenwraith/token-bubbles/render"
)

func tableCmd(opts *options) *cobra.Command {
	var (
		sortBy string
		asc    bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Fetch a list once and print it as a sorted table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			key, err := market.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			entities, err := fetchOnce(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			market.Sort(entities, key, asc)
			if limit > 0 && len(entities) > limit {
				entities = entities[:limit]
			}

			fmt.Fprintf(os.Stdout, "%s %s\n\n", Brand.Sprint("bubbles"), Subtle.Sprint(describe(cfg)))
			printTable(os.Stdout, tableHeaders(cfg.Timeframe()), tableRows(entities))
			fmt.Fprintf(os.Stdout, "\n  %d tokens\n", len(entities))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "mcap", "sort column: symbol, chain, price, change, mcap, volume, liquidity")
	cmd.Flags().BoolVar(&asc, "asc", false, "ascending order")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most n rows")
	return cmd
}

func tableHeaders(tf core.Timeframe) []string {
	return []string{"#", "SYMBOL", "CHAIN", "PRICE", tf.String(), "MCAP", "VOL 24H", "LIQUIDITY"}
}

func tableRows(entities []core.Entity) [][]cell {
	rows := make([][]cell, len(entities))
	for i := range entities {
		e := &entities[i]
		rows[i] = []cell{
			{text: fmt.Sprint(i + 1), right: true, color: Subtle},
			{text: e.Symbol, color: Brand},
			{text: e.Chain},
			{text: render.EntityPrice(e), right: true},
			{text: render.FormatPct(e.PriceChangePct), right: true, color: changeColor(e.PriceChangePct)},
			{text: render.FormatUSD(e.MarketCap), right: true},
			{text: render.FormatUSD(e.Volume24h), right: true},
			{text: render.FormatUSD(e.Liquidity), right: true},
		}
	}
	return rows
}

func changeColor(pct float64) *color.Color {
	switch {
	case pct > 0:
		return Good
	case pct < 0:
		return Bad
	}
	return nil
}

// fetchOnce is shared by commands that need a single list load
func fetchOnce(ctx context.Context, cfg *config.Config) ([]core.Entity, error) {
	source, _ := newSource(cfg, cliLogger(cfg))
	return source.Load(ctx, cfg.Data.List, cfg.Timeframe(), false)
}
