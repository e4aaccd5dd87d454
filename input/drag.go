package input

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/parameter"
	"github.com/lixenwraith/token-bubbles/physics"
)

// BodySource exposes the body set the controller writes to
// Bodies returns the live slice, writes through it are visible to the owner
type BodySource interface {
	Bodies() []core.Body
	Generation() uint64
	Viewport() core.Viewport
}

// Clock provides gesture timestamps, engine.TimeProvider satisfies it
type Clock interface {
	Now() time.Time
}

// GestureState is the drag state machine position
type GestureState uint8

const (
	GestureIdle GestureState = iota
	GestureArmed
	GestureDragging
)

// Outcome classifies a finished gesture
type Outcome uint8

const (
	OutcomeNone    Outcome = iota // Ignored event, gesture in progress, or slow press
	OutcomeClick                  // Quick tap without drag, selection fires
	OutcomeRelease                // Drag ended, momentum handed back
)

// Result is returned for every handled pointer event
type Result struct {
	Outcome  Outcome
	EntityID string // Set for OutcomeClick
	Velocity r2.Vec // Set for OutcomeRelease
}

// DragParams tunes gesture classification
type DragParams struct {
	Threshold        float64
	ClickMaxDuration time.Duration
	MaxReleaseSpeed  float64
	FrameInterval    time.Duration
	Padding          float64
}

// DefaultDragParams returns the tuning from the parameter package
func DefaultDragParams() DragParams {
	return DragParams{
		Threshold:        parameter.DragThreshold,
		ClickMaxDuration: parameter.ClickMaxDuration,
		MaxReleaseSpeed:  parameter.MaxReleaseSpeed,
		FrameInterval:    parameter.FrameInterval,
		Padding:          parameter.Padding,
	}
}

// DragController runs one pointer gesture at a time against a BodySource
type DragController struct {
	world  BodySource
	clock  Clock
	params DragParams

	state      GestureState
	pointerID  int
	index      int
	entityID   string
	generation uint64

	bodyStart    r2.Vec
	pointerStart r2.Vec
	startTime    time.Time

	lastPointer r2.Vec
	lastTime    time.Time
	velocity    r2.Vec
}

// NewDragController creates an idle controller
func NewDragController(world BodySource, clock Clock, p DragParams) *DragController {
	return &DragController{
		world:  world,
		clock:  clock,
		params: p,
		index:  -1,
	}
}

// State returns the current gesture state
func (d *DragController) State() GestureState {
	return d.state
}

// Index returns the body index owned by the gesture, -1 when idle
func (d *DragController) Index() int {
	return d.index
}

// Active reports whether a gesture is armed or dragging
func (d *DragController) Active() bool {
	return d.state != GestureIdle
}

// Handle advances the gesture with one pointer event
func (d *DragController) Handle(ev PointerEvent) Result {
	switch ev.Phase {
	case PhaseDown:
		d.down(ev)
	case PhaseMove:
		if d.owns(ev) {
			if b := d.body(); b != nil {
				d.move(b, ev.Vec())
			}
		}
	case PhaseUp:
		if d.owns(ev) {
			return d.up(ev)
		}
	}
	return Result{}
}

// Cancel abandons the gesture, a dragged body is returned to the simulation at rest
func (d *DragController) Cancel() {
	if d.state == GestureDragging {
		if b := d.body(); b != nil {
			b.Dragging = false
			b.Vel = r2.Vec{}
		}
	}
	d.reset()
}

func (d *DragController) owns(ev PointerEvent) bool {
	return d.state != GestureIdle && ev.PointerID == d.pointerID
}

func (d *DragController) down(ev PointerEvent) {
	if d.state != GestureIdle {
		return
	}
	bodies := d.world.Bodies()
	p := ev.Vec()

	// Last drawn is top-most
	for i := len(bodies) - 1; i >= 0; i-- {
		if !bodies[i].Contains(p) {
			continue
		}
		now := d.clock.Now()
		d.state = GestureArmed
		d.pointerID = ev.PointerID
		d.index = i
		d.entityID = bodies[i].Entity.ID
		d.generation = d.world.Generation()
		d.bodyStart = bodies[i].Pos
		d.pointerStart = p
		d.startTime = now
		d.lastPointer = p
		d.lastTime = now
		d.velocity = r2.Vec{}
		return
	}
}

func (d *DragController) move(b *core.Body, p r2.Vec) {
	if d.state == GestureArmed {
		if r2.Norm(r2.Sub(p, d.pointerStart)) <= d.params.Threshold {
			return
		}
		d.state = GestureDragging
		b.Dragging = true
	}

	now := d.clock.Now()
	vp := d.world.Viewport()
	target := r2.Add(d.bodyStart, r2.Sub(p, d.pointerStart))
	b.Pos = physics.ContainCenter(target, b.Radius(), vp.Width, vp.Height, d.params.Padding)

	// Per-frame velocity from the pointer delta, events closer than a frame count as one
	frames := 1.0
	if d.params.FrameInterval > 0 {
		if f := float64(now.Sub(d.lastTime)) / float64(d.params.FrameInterval); f > 1 {
			frames = f
		}
	}
	d.velocity = r2.Scale(1/frames, r2.Sub(p, d.lastPointer))
	physics.CapSpeed(&d.velocity, d.params.MaxReleaseSpeed)

	d.lastPointer = p
	d.lastTime = now
}

func (d *DragController) up(ev PointerEvent) Result {
	defer d.reset()

	b := d.body()
	if b == nil {
		return Result{}
	}

	p := ev.Vec()
	if p != d.lastPointer {
		d.move(b, p)
	}

	switch d.state {
	case GestureArmed:
		if d.clock.Now().Sub(d.startTime) < d.params.ClickMaxDuration {
			return Result{Outcome: OutcomeClick, EntityID: d.entityID}
		}
		return Result{}
	case GestureDragging:
		b.Dragging = false
		b.Settling = false
		physics.SetImpulse(b, d.velocity)
		return Result{Outcome: OutcomeRelease, Velocity: d.velocity}
	}
	return Result{}
}

// body returns the gesture's body, or nil when the set changed under the gesture
// A stale gesture is abandoned without touching the new set
func (d *DragController) body() *core.Body {
	bodies := d.world.Bodies()
	if d.world.Generation() != d.generation || d.index < 0 || d.index >= len(bodies) ||
		bodies[d.index].Entity.ID != d.entityID {
		d.reset()
		return nil
	}
	return &bodies[d.index]
}

func (d *DragController) reset() {
	d.state = GestureIdle
	d.index = -1
	d.entityID = ""
	d.velocity = r2.Vec{}
}
