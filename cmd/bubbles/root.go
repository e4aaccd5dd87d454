package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/token-bubbles/config"
	"github.com/lixenwraith/token-bubbles/market"
	"github.com/lixenwraith/token-bubbles/sizing"
)

var version = "0.1.0"

// options are flag overrides applied on top of the loaded config
type options struct {
	configPath string
	list       string
	timeframe  string
	mode       string
	seed       uint64
	noSound    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "bubbles",
		Short:         "bubbles · live token bubbles in the terminal",
		Long:          Brand.Sprint("bubbles") + " · crypto tokens as bouncing bubbles sized by price change or market cap\n" + Subtle.Sprint("Drag to throw, click for details, tab for the table"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	root.SetVersionTemplate("bubbles {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.Path()+")")
	pf.StringVarP(&opts.list, "list", "l", "", "token list name, ALL merges every list")
	pf.StringVarP(&opts.timeframe, "timeframe", "t", "", "price change window: 5m, 1h, 6h, 24h")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn, error")

	f := root.Flags()
	f.StringVarP(&opts.mode, "mode", "m", "", "bubble size metric: change, mcap")
	f.Uint64Var(&opts.seed, "seed", 0, "layout seed, 0 seeds from the clock")
	f.BoolVar(&opts.noSound, "no-sound", false, "start muted")

	root.AddCommand(
		tableCmd(opts),
		listsCmd(opts),
		configCmd(opts),
	)
	return root
}

// loadConfig reads the config and applies any flags the user set
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("list") {
		cfg.Data.List = opts.list
	}
	if flags.Changed("timeframe") {
		cfg.Data.Timeframe = opts.timeframe
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		cfg.View.Mode = opts.mode
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.View.Seed = opts.seed
	}
	if flags.Lookup("no-sound") != nil && flags.Changed("no-sound") {
		cfg.View.Sound = !opts.noSound
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// describe is the one-line context printed above command output
func describe(cfg *config.Config) string {
	return fmt.Sprintf("list %s · %s · %s", cfg.Data.List, cfg.Timeframe(), sizingLabel(cfg.Mode()))
}

func sizingLabel(m sizing.Mode) string {
	if m == sizing.ByMarketCap {
		return "sized by market cap"
	}
	return "sized by change"
}

func newSource(cfg *config.Config, logger zerolog.Logger) (*market.Source, *market.Cache[string, market.Pair]) {
	cache := market.NewCache[string, market.Pair](cfg.Data.CacheTTL.Duration, nil)
	client := market.NewClient(market.ClientConfig{
		BaseURL:     cfg.Data.BaseURL,
		Timeout:     cfg.Data.Timeout.Duration,
		Concurrency: cfg.Data.Concurrency,
	}, cache, logger)
	return market.NewSource(market.NewLists(cfg.Data.ListsDir), client), cache
}
