package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/parameter"
)

// keyHint is right-aligned on the title line when it fits
const keyHint = "tab view  m size  1-4 time  [ ] list  r refresh  s sound  q quit"

// TerminalRenderer draws frames to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	table  *Table
	width  int
	height int
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		table:  NewTable(),
		width:  w,
		height: h,
	}
}

// Table returns the table view state
func (r *TerminalRenderer) Table() *Table {
	return r.table
}

// Buffer returns the compositor of the last frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// LayoutArea returns the screen region bubbles live in for a width x height terminal
func LayoutArea(width, height int) core.Area {
	h := height - parameter.TopMargin - parameter.BottomMargin
	if h < 1 {
		h = 1
	}
	if width < 1 {
		width = 1
	}
	return core.Area{X: 0, Y: parameter.TopMargin, Width: width, Height: h}
}

// AreaViewport converts a cell area to layout units
func AreaViewport(a core.Area) core.Viewport {
	return core.Viewport{
		Width:  float64(a.Width) * parameter.CellWidth,
		Height: float64(a.Height) * parameter.CellHeight,
	}
}

// Area returns the layout area for the current screen size
func (r *TerminalRenderer) Area() core.Area {
	w, h := r.screen.Size()
	return LayoutArea(w, h)
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(f engine.Frame) {
	w, h := r.screen.Size()
	if w != r.width || h != r.height {
		r.width, r.height = w, h
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}
	area := LayoutArea(w, h)

	r.drawTitle()

	switch f.View {
	case engine.ViewTable:
		r.drawTable(f, area)
	default:
		r.drawBubbles(f, area)
	}

	if f.Selected != nil {
		r.drawDetail(f.Selected, f.Timeframe)
	}

	r.drawStatusBar(f)

	r.buf.FlushToScreen(r.screen)
	r.screen.Show()
}

func (r *TerminalRenderer) drawTitle() {
	x := r.buf.Text(0, 0, parameter.TitleText, RgbTitle, true)
	hintX := r.width - len([]rune(keyHint)) - 1
	if hintX > x+2 {
		r.buf.Text(hintX, 0, keyHint, RgbDim, false)
	}
}

// drawCentered writes one line centered horizontally on row y
func (r *TerminalRenderer) drawCentered(y int, s string, fg RGB) {
	s = truncate(s, r.width)
	x := (r.width - len([]rune(s))) / 2
	r.buf.Text(x, y, s, fg, false)
}
