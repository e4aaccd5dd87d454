package engine

import (
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/sizing"
)

// View selects the physics or the flattened table presentation
type View uint8

const (
	ViewBubbles View = iota
	ViewTable
)

func (v View) String() string {
	if v == ViewTable {
		return "table"
	}
	return "bubbles"
}

// World is the body set and its context, owned by the Orchestrator
// Generation increments whenever the body slice is replaced
type World struct {
	entities   []core.Entity
	bodies     []core.Body
	viewport   core.Viewport
	mode       sizing.Mode
	timeframe  core.Timeframe
	view       View
	generation uint64
}

// Bodies returns the live body slice
func (w *World) Bodies() []core.Body {
	return w.bodies
}

// Entities returns the current entity list in input order
func (w *World) Entities() []core.Entity {
	return w.entities
}

// Generation returns the body set generation
func (w *World) Generation() uint64 {
	return w.generation
}

// Viewport returns the layout container
func (w *World) Viewport() core.Viewport {
	return w.viewport
}

// Mode returns the sizing mode
func (w *World) Mode() sizing.Mode {
	return w.mode
}

// Timeframe returns the active price change window
func (w *World) Timeframe() core.Timeframe {
	return w.timeframe
}

// View returns the active presentation
func (w *World) View() View {
	return w.view
}

// Entity returns the entity with id, ok is false when absent
func (w *World) Entity(id string) (core.Entity, bool) {
	for _, e := range w.entities {
		if e.ID == id {
			return e, true
		}
	}
	return core.Entity{}, false
}
