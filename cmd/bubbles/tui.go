package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/token-bubbles/audio"
	"github.com/lixenwraith/token-bubbles/config"
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/logger"
	"github.com/lixenwraith/token-bubbles/market"
	"github.com/lixenwraith/token-bubbles/render"
)

// purgeSchedule sweeps expired pairs out of the cache
const purgeSchedule = "@every 5m"

// runTUI owns the terminal until the user quits
func runTUI(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// The screen owns stdout, logs go to a file
	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Out: out})
	logger.SetGlobalLogger(log)

	source, cache := newSource(cfg, log)
	names, err := source.Lists.Names()
	if err != nil {
		return fmt.Errorf("lists: %w", err)
	}

	sound := audio.NewSoundManager(cfg.View.Sound)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the view runs without sound
		log.Warn().Err(err).Msg("audio unavailable")
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer func() {
		screen.Fini()
		core.SetCrashRestore(nil)
	}()
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground.Color()))

	app := newApp(screen, cfg, source, names, sound, log)

	refresher := market.NewRefresher(log)
	if cfg.Data.Refresh != "" {
		if err := refresher.Schedule(cfg.Data.Refresh, app.requestRefresh); err != nil {
			return err
		}
	}
	if err := refresher.Schedule(purgeSchedule, func() {
		if n := cache.Purge(); n > 0 {
			log.Debug().Int("evicted", n).Msg("cache purge")
		}
	}); err != nil {
		return err
	}
	refresher.Start()
	defer refresher.Stop()

	log.Info().
		Str("list", cfg.Data.List).
		Str("timeframe", cfg.Data.Timeframe).
		Str("mode", cfg.View.Mode).
		Int("lists", len(names)).
		Msg("start")

	return app.Run(ctx)
}

// cliLogger is the stderr logger of the one-shot commands
func cliLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{Level: cfg.Log.Level, Pretty: true})
}
