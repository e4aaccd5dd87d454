package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine/status"
	"github.com/lixenwraith/token-bubbles/input"
	"github.com/lixenwraith/token-bubbles/layout"
	"github.com/lixenwraith/token-bubbles/physics"
	"github.com/lixenwraith/token-bubbles/sizing"
	"github.com/lixenwraith/token-bubbles/vmath"
)

// Refresher asks the data layer for a fresh entity list for tf
// The result must come back through SetEntities on the loop goroutine
type Refresher func(tf core.Timeframe)

// Config wires the tunables of every stage
type Config struct {
	Layout    layout.Params
	Physics   physics.Params
	Drag      input.DragParams
	Mode      sizing.Mode
	Timeframe core.Timeframe
	Seed      uint64
}

// DefaultConfig returns the parameter package tuning
func DefaultConfig() Config {
	return Config{
		Layout:    layout.DefaultParams(),
		Physics:   physics.DefaultParams(),
		Drag:      input.DefaultDragParams(),
		Mode:      sizing.ByChange,
		Timeframe: core.Timeframe24h,
		Seed:      1,
	}
}

// Orchestrator owns the World and sequences layout, simulation, gestures and frames
// Every method must be called from the loop goroutine
type Orchestrator struct {
	world     *World
	solver    *layout.Solver
	sim       *physics.Simulation
	drag      *input.DragController
	scheduler FrameScheduler
	renderer  Renderer
	clock     Clock
	events    *EventQueue
	logger    zerolog.Logger

	frameID    FrameID
	hasFrame   bool
	frameCount int64

	selected  string
	status    Status
	refresher Refresher

	statFrames  *atomic.Int64
	statBounces *atomic.Int64
	statLayouts *atomic.Int64
}

// NewOrchestrator creates an orchestrator with an empty world
// renderer may be nil, reg may be nil
func NewOrchestrator(cfg Config, scheduler FrameScheduler, renderer Renderer, clock Clock, reg *status.Registry, logger zerolog.Logger) *Orchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	rng := vmath.NewFastRand(cfg.Seed)
	w := &World{mode: cfg.Mode, timeframe: cfg.Timeframe}

	return &Orchestrator{
		world:       w,
		solver:      layout.NewSolver(cfg.Layout, rng),
		sim:         physics.NewSimulation(cfg.Physics, rng),
		drag:        input.NewDragController(w, clock, cfg.Drag),
		scheduler:   scheduler,
		renderer:    renderer,
		clock:       clock,
		events:      NewEventQueue(),
		logger:      logger.With().Str("component", "orchestrator").Logger(),
		statFrames:  reg.Ints.Get("engine.frames"),
		statBounces: reg.Ints.Get("engine.bounces"),
		statLayouts: reg.Ints.Get("engine.layouts"),
	}
}

// World returns the owned world for read access
func (o *Orchestrator) World() *World {
	return o.world
}

// Events returns the selection event queue
func (o *Orchestrator) Events() *EventQueue {
	return o.events
}

// Drag returns the gesture controller
func (o *Orchestrator) Drag() *input.DragController {
	return o.drag
}

// FrameCount returns the number of ticks run
func (o *Orchestrator) FrameCount() int64 {
	return o.frameCount
}

// SetRefresher registers the data layer callback used on timeframe changes
func (o *Orchestrator) SetRefresher(fn Refresher) {
	o.refresher = fn
}

// SetEntities discards the body set and lays out list from scratch
func (o *Orchestrator) SetEntities(list []core.Entity) {
	o.world.entities = list
	o.status.Loading = false
	o.status.Err = ""
	o.status.UpdatedAt = o.clock.Now()
	if o.selected != "" {
		if _, ok := o.world.Entity(o.selected); !ok {
			o.selected = ""
		}
	}
	o.reinitialize("entities")
}

// SetMode switches the sizing metric, bodies are rebuilt
func (o *Orchestrator) SetMode(mode sizing.Mode) {
	if mode == o.world.mode {
		return
	}
	o.world.mode = mode
	o.reinitialize("mode")
}

// SetTimeframe records tf and asks the data layer for matching data
func (o *Orchestrator) SetTimeframe(tf core.Timeframe) {
	o.world.timeframe = tf
	o.Refresh()
}

// Refresh requests a fresh list for the current timeframe
func (o *Orchestrator) Refresh() {
	if o.refresher == nil {
		return
	}
	o.status.Loading = true
	o.refresher(o.world.timeframe)
}

// Resize sets the container in layout units, bodies are rebuilt in the same order
func (o *Orchestrator) Resize(width, height float64) {
	vp := core.Viewport{Width: width, Height: height}
	if vp == o.world.viewport {
		return
	}
	o.world.viewport = vp
	o.reinitialize("resize")
}

// SetView switches presentation, the frame loop runs only for bubbles
func (o *Orchestrator) SetView(v View) {
	if v == o.world.view {
		return
	}
	o.world.view = v
	o.drag.Cancel()
	o.schedule()
	o.Render()
}

// HandlePointer feeds a gesture step to the drag controller
func (o *Orchestrator) HandlePointer(ev input.PointerEvent) input.Result {
	if o.world.view != ViewBubbles {
		return input.Result{}
	}
	res := o.drag.Handle(ev)
	if res.Outcome == input.OutcomeClick {
		sel := SelectionEvent{EntityID: res.EntityID, Frame: o.frameCount, Timestamp: o.clock.Now()}
		o.selected = res.EntityID
		o.events.Push(sel)
		o.logger.Debug().Str("entity", res.EntityID).Msg("selected")
	}
	return res
}

// Selected returns the detail panel target
func (o *Orchestrator) Selected() (core.Entity, bool) {
	if o.selected == "" {
		return core.Entity{}, false
	}
	return o.world.Entity(o.selected)
}

// SelectedID returns the detail panel target id, empty when closed
func (o *Orchestrator) SelectedID() string {
	return o.selected
}

// Select opens the detail panel for id, used by the table view
func (o *Orchestrator) Select(id string) {
	if _, ok := o.world.Entity(id); ok {
		o.selected = id
	}
}

// ClearSelection closes the detail panel
func (o *Orchestrator) ClearSelection() {
	o.selected = ""
}

// Status returns the status bar state
func (o *Orchestrator) Status() Status {
	return o.status
}

// SetListName records the active list
func (o *Orchestrator) SetListName(name string) {
	o.status.List = name
}

// SetSound records the audio toggle for display
func (o *Orchestrator) SetSound(on bool) {
	o.status.Sound = on
}

// SetError records a data layer failure, the current set stays on screen
func (o *Orchestrator) SetError(err error) {
	o.status.Loading = false
	if err == nil {
		o.status.Err = ""
		return
	}
	o.status.Err = err.Error()
}

// Render hands the current state to the renderer
func (o *Orchestrator) Render() {
	if o.renderer == nil {
		return
	}
	f := Frame{
		View:      o.world.view,
		Bodies:    core.CloneBodies(o.world.bodies),
		Entities:  o.world.entities,
		Viewport:  o.world.viewport,
		Mode:      o.world.mode,
		Timeframe: o.world.timeframe,
		Status:    o.status,
		Count:     o.frameCount,
	}
	if e, ok := o.Selected(); ok {
		f.Selected = &e
	}
	o.renderer.Render(f)
}

func (o *Orchestrator) reinitialize(reason string) {
	o.drag.Cancel()
	o.world.generation++

	vp := o.world.viewport
	if vp.Area() == 0 || len(o.world.entities) == 0 {
		o.world.bodies = []core.Body{}
	} else {
		o.world.bodies = o.solver.Initialize(o.world.entities, vp.Width, vp.Height, o.world.mode)
	}
	o.statLayouts.Add(1)

	o.logger.Debug().
		Str("reason", reason).
		Int("bodies", len(o.world.bodies)).
		Uint64("generation", o.world.generation).
		Float64("width", vp.Width).
		Float64("height", vp.Height).
		Msg("layout")

	o.schedule()
	o.Render()
}

// schedule replaces the pending frame, or cancels it when no frame should run
func (o *Orchestrator) schedule() {
	if o.hasFrame {
		o.scheduler.CancelFrame(o.frameID)
		o.hasFrame = false
	}
	if o.world.view != ViewBubbles || len(o.world.bodies) == 0 {
		return
	}
	gen := o.world.generation
	o.frameID = o.scheduler.RequestFrame(func() { o.runFrame(gen) })
	o.hasFrame = true
}

func (o *Orchestrator) runFrame(gen uint64) {
	o.hasFrame = false
	if gen != o.world.generation || o.world.view != ViewBubbles {
		return
	}

	vp := o.world.viewport
	o.sim.Tick(o.world.bodies, vp.Width, vp.Height)
	o.frameCount++
	o.statFrames.Add(1)
	o.statBounces.Add(int64(o.sim.Bounces))

	o.Render()
	o.schedule()
}
