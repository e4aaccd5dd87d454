package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/audio"
	"github.com/lixenwraith/token-bubbles/config"
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/engine/status"
	"github.com/lixenwraith/token-bubbles/input"
	"github.com/lixenwraith/token-bubbles/parameter"
	"github.com/lixenwraith/token-bubbles/render"
)

// loader resolves a list name into entities, implemented by market.Source
type loader interface {
	Load(ctx context.Context, name string, tf core.Timeframe, force bool) ([]core.Entity, error)
}

// fetchResult carries a finished load back to the loop goroutine
type fetchResult struct {
	token    uint64
	list     string
	entities []core.Entity
	err      error
}

// App is the interactive loop: one goroutine owns the orchestrator, everything else hands off through channels
type App struct {
	screen   tcell.Screen
	sched    *engine.LoopScheduler
	orch     *engine.Orchestrator
	renderer *render.TerminalRenderer
	machine  *input.Machine
	source   loader
	sound    *audio.SoundManager
	reg      *status.Registry
	log      zerolog.Logger
	fps      int

	statSelections *atomic.Int64

	lists     []string
	listIdx   int
	token     uint64
	forceNext bool

	ctx         context.Context
	cancelFetch context.CancelFunc

	events  chan tcell.Event
	results chan fetchResult
	refresh chan struct{}
}

func newApp(screen tcell.Screen, cfg *config.Config, source loader, lists []string, sound *audio.SoundManager, log zerolog.Logger) *App {
	ecfg := engine.DefaultConfig()
	ecfg.Physics = cfg.ApplyPhysics(ecfg.Physics)
	ecfg.Drag = cfg.ApplyDrag(ecfg.Drag)
	ecfg.Mode = cfg.Mode()
	ecfg.Timeframe = cfg.Timeframe()
	ecfg.Seed = cfg.View.Seed
	if ecfg.Seed == 0 {
		ecfg.Seed = uint64(time.Now().UnixNano())
	}

	a := &App{
		screen:   screen,
		sched:    engine.NewLoopScheduler(),
		renderer: render.NewTerminalRenderer(screen),
		machine:  input.NewMachine(),
		source:   source,
		sound:    sound,
		reg:      status.NewRegistry(),
		log:      log.With().Str("component", "app").Logger(),
		fps:      cfg.View.FPS,
		lists:    lists,
		ctx:      context.Background(),
		events:   make(chan tcell.Event, parameter.EventBuffer),
		results:  make(chan fetchResult, 4),
		refresh:  make(chan struct{}, 1),
	}
	a.statSelections = a.reg.Ints.Get("app.selections")
	if a.fps < 1 {
		a.fps = parameter.DefaultFPS
	}
	for i, name := range lists {
		if name == cfg.Data.List {
			a.listIdx = i
		}
	}

	a.orch = engine.NewOrchestrator(ecfg, a.sched, a.renderer, engine.NewTimeProvider(), a.reg, log)
	a.orch.SetRefresher(func(core.Timeframe) {
		force := a.forceNext
		a.forceNext = false
		a.fetch(force)
	})
	a.orch.SetListName(a.listName())
	a.orch.SetSound(sound.Enabled())
	return a
}

func (a *App) listName() string {
	if len(a.lists) == 0 {
		return ""
	}
	return a.lists[a.listIdx]
}

// requestRefresh is safe from any goroutine, extra requests coalesce
func (a *App) requestRefresh() {
	select {
	case a.refresh <- struct{}{}:
	default:
	}
}

// fetch starts a background load, superseding any in-flight one
func (a *App) fetch(force bool) {
	if a.cancelFetch != nil {
		a.cancelFetch()
	}
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancelFetch = cancel

	a.token++
	token, name, tf := a.token, a.listName(), a.orch.World().Timeframe()
	a.log.Debug().Uint64("token", token).Str("list", name).Str("timeframe", tf.String()).Bool("force", force).Msg("fetch")

	core.Go(func() {
		entities, err := a.source.Load(ctx, name, tf, force)
		select {
		case a.results <- fetchResult{token: token, list: name, entities: entities, err: err}:
		case <-ctx.Done():
		}
	})
}

// applyResult installs a finished load unless a newer request superseded it
func (a *App) applyResult(r fetchResult) {
	if r.token != a.token {
		a.log.Debug().Uint64("token", r.token).Uint64("current", a.token).Msg("stale result dropped")
		return
	}
	if r.err != nil {
		a.log.Warn().Err(r.err).Str("list", r.list).Msg("load failed")
		a.orch.SetError(r.err)
		a.orch.Render()
		return
	}
	a.log.Info().Str("list", r.list).Int("tokens", len(r.entities)).Msg("loaded")
	a.orch.SetEntities(r.entities)
	a.syncMode()
}

// resize rebuilds the layout for the current screen size
func (a *App) resize() {
	w, h := a.screen.Size()
	area := render.LayoutArea(w, h)
	a.machine.SetArea(area)
	vp := render.AreaViewport(area)
	a.orch.Resize(vp.Width, vp.Height)
}

// handleIntent applies one action, returns true to quit
func (a *App) handleIntent(it *input.Intent) bool {
	quit := a.apply(it)
	a.drainSelections()
	a.syncMode()
	return quit
}

// drainSelections plays the cue for every click queued since the last intent
func (a *App) drainSelections() {
	for _, sel := range a.orch.Events().Consume() {
		a.statSelections.Add(1)
		a.log.Debug().Str("entity", sel.EntityID).Int64("frame", sel.Frame).Msg("selection")
		a.sound.PlaySelect()
	}
}

// syncMode points the parser at the view, or at the detail panel while it is open
func (a *App) syncMode() {
	mode := input.ModeBubbles
	switch {
	case a.orch.SelectedID() != "":
		mode = input.ModeDetail
	case a.orch.World().View() == engine.ViewTable:
		mode = input.ModeTable
	}
	if mode != a.machine.Mode() {
		a.machine.SetMode(mode)
	}
}

func (a *App) apply(it *input.Intent) bool {
	world := a.orch.World()

	switch it.Type {
	case input.IntentQuit:
		return true

	case input.IntentEscape:
		if a.orch.SelectedID() != "" {
			a.orch.ClearSelection()
			a.orch.Render()
			return false
		}
		return true

	case input.IntentToggleSound:
		a.orch.SetSound(a.sound.Toggle())
		a.orch.Render()

	case input.IntentResize:
		a.screen.Sync()
		a.resize()
		a.orch.Render()

	case input.IntentToggleView:
		if world.View() == engine.ViewBubbles {
			a.orch.SetView(engine.ViewTable)
		} else {
			a.orch.SetView(engine.ViewBubbles)
		}

	case input.IntentToggleMode:
		a.orch.SetMode(world.Mode().Toggle())

	case input.IntentTimeframe:
		if tf, ok := core.TimeframeAt(it.Count); ok && tf != world.Timeframe() {
			a.orch.SetTimeframe(tf)
			a.orch.Render()
		}

	case input.IntentPrevList, input.IntentNextList:
		if len(a.lists) < 2 {
			return false
		}
		step := 1
		if it.Type == input.IntentPrevList {
			step = len(a.lists) - 1
		}
		a.listIdx = (a.listIdx + step) % len(a.lists)
		a.orch.ClearSelection()
		a.orch.SetListName(a.listName())
		a.orch.Refresh()
		a.orch.Render()

	case input.IntentRefresh:
		a.forceNext = true
		a.orch.Refresh()
		a.orch.Render()

	case input.IntentConfirm:
		if a.orch.SelectedID() != "" {
			a.orch.ClearSelection()
		} else if world.View() == engine.ViewTable {
			if e, ok := a.renderer.Table().Current(); ok {
				a.orch.Select(e.ID)
			}
		}
		a.orch.Render()

	case input.IntentSortNext:
		a.renderer.Table().CycleKey()
		a.orch.Render()

	case input.IntentSortReverse:
		a.renderer.Table().Reverse()
		a.orch.Render()

	case input.IntentScroll:
		a.renderer.Table().Scroll(int(it.ScrollDir) * it.Count)
		a.orch.Render()

	case input.IntentPointer:
		res := a.orch.HandlePointer(it.Pointer)
		if res.Outcome == input.OutcomeRelease {
			a.sound.PlayRelease(r2.Norm(res.Velocity))
		}
		if res.Outcome == input.OutcomeClick {
			a.orch.Render()
		}
	}
	return false
}

// pollEvents forwards terminal events until the screen is finalized
func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run drives the loop until quit or ctx ends
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx = ctx

	core.Go(func() { a.pollEvents(ctx) })

	a.resize()
	a.orch.Refresh()
	a.orch.Render()

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-a.events:
			if it := a.machine.Process(ev); it != nil {
				if a.handleIntent(it) {
					a.logStats()
					return nil
				}
			}

		case <-ticker.C:
			a.sched.RunFrame()

		case r := <-a.results:
			a.applyResult(r)

		case <-a.refresh:
			if !a.orch.Status().Loading {
				a.orch.Refresh()
				a.orch.Render()
			}
		}
	}
}

func (a *App) logStats() {
	ev := a.log.Info()
	for _, name := range a.reg.Ints.Names() {
		ev = ev.Int64(name, a.reg.Ints.Get(name).Load())
	}
	ev.Msg("exit")
}
