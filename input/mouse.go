package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/token-bubbles/core"
)

// TranslateMouse converts a tcell mouse event into a pointer event
// pressed is the primary button state before ev, the new state is returned
// Terminals report motion only as button masks, so phases are derived from transitions
// ok is false for events that carry no gesture step (hover, wheel, presses outside area)
func TranslateMouse(ev *tcell.EventMouse, area core.Area, pressed bool) (pe PointerEvent, nowPressed bool, ok bool) {
	cx, cy := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	x, y := CellToUnits(cx, cy, area)
	pe = PointerEvent{X: x, Y: y, PointerID: 0}

	switch {
	case down && !pressed:
		if !area.Contains(cx, cy) {
			return pe, false, false
		}
		pe.Phase = PhaseDown
		return pe, true, true
	case down && pressed:
		pe.Phase = PhaseMove
		return pe, true, true
	case !down && pressed:
		pe.Phase = PhaseUp
		return pe, false, true
	}
	return pe, false, false
}

// Wheel returns -1 for wheel up, 1 for wheel down, 0 otherwise
func Wheel(ev *tcell.EventMouse) int {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		return -1
	case ev.Buttons()&tcell.WheelDown != 0:
		return 1
	}
	return 0
}
