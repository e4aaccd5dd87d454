package input

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/parameter"
)

// Phase is the pointer gesture step
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a normalized pointer sample in layout units, local to the layout area
type PointerEvent struct {
	X, Y      float64
	Phase     Phase
	PointerID int
}

// Vec returns the event position as a vector
func (e PointerEvent) Vec() r2.Vec {
	return r2.Vec{X: e.X, Y: e.Y}
}

// CellToUnits converts a screen cell to the center of that cell in area-local layout units
func CellToUnits(cellX, cellY int, area core.Area) (float64, float64) {
	x := (float64(cellX-area.X) + 0.5) * parameter.CellWidth
	y := (float64(cellY-area.Y) + 0.5) * parameter.CellHeight
	return x, y
}
