package render

import (
	"math"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/parameter"
	"github.com/lixenwraith/token-bubbles/vmath"
)

const (
	// rimBand is the normalized thickness of the lighter bubble outline
	rimBand = 0.3
	// fillAlpha mixes the tint into the background for the interior
	fillAlpha = 0.85
)

func (r *TerminalRenderer) drawBubbles(f engine.Frame, area core.Area) {
	if len(f.Bodies) == 0 {
		msg := "no tokens"
		switch {
		case f.Status.Loading:
			msg = "loading…"
		case f.Status.Err != "":
			msg = "no data: " + f.Status.Err
		}
		r.drawCentered(area.Y+area.Height/2, msg, RgbDim)
		return
	}

	// Later bodies paint over earlier ones, matching hit-test order
	for i := range f.Bodies {
		r.drawBubble(&f.Bodies[i], area)
	}
}

// drawBubble rasterizes one body as an ellipse in cell space
func (r *TerminalRenderer) drawBubble(b *core.Body, area core.Area) {
	radius := b.Radius()
	rx := radius / parameter.CellWidth
	ry := radius / parameter.CellHeight
	cx := b.Pos.X / parameter.CellWidth
	cy := b.Pos.Y / parameter.CellHeight

	tint := ChangeColor(b.Entity.PriceChangePct)
	if b.Dragging {
		tint = Lighten(tint, 0.25)
	}
	fill := Blend(RgbBackground, tint, fillAlpha)
	rim := Lighten(tint, 0.35)

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))

	painted := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if !vmath.EllipseContains(dx, dy, rx, ry) {
				continue
			}
			sx, sy := area.X+x, area.Y+y
			if !area.Contains(sx, sy) {
				continue
			}
			bg := fill
			if vmath.EllipseRim(dx, dy, rx, ry, rimBand) {
				bg = rim
			}
			r.buf.SetWithBg(sx, sy, ' ', RgbText, bg)
			painted++
		}
	}

	// Too small to cover a cell center
	if painted == 0 {
		sx, sy := area.X+int(cx), area.Y+int(cy)
		if area.Contains(sx, sy) {
			r.buf.SetFgOnly(sx, sy, '●', tint, false)
		}
		return
	}

	r.drawLabel(b, area, cx, cy, rx, ry, fill)
}

// drawLabel centers symbol, price and change inside the bubble as far as they fit
func (r *TerminalRenderer) drawLabel(b *core.Body, area core.Area, cx, cy, rx, ry float64, fill RGB) {
	e := &b.Entity
	lines := []string{e.Symbol}
	switch {
	case ry >= 2.5:
		lines = append(lines, EntityPrice(e), FormatPct(e.PriceChangePct))
	case ry >= 1.5:
		lines = append(lines, FormatPct(e.PriceChangePct))
	}

	fg := Contrast(fill)
	first := int(math.Floor(cy)) - (len(lines)-1)/2
	for i, line := range lines {
		row := first + i
		dy := float64(row) + 0.5 - cy
		t := 1 - (dy*dy)/(ry*ry)
		if t <= 0 {
			continue
		}
		avail := int(2 * rx * math.Sqrt(t))
		text := truncate(line, avail)
		if text == "" {
			continue
		}
		n := len([]rune(text))
		x := area.X + int(math.Round(cx-float64(n)/2))
		y := area.Y + row
		if !area.Contains(x, y) {
			continue
		}
		r.buf.Text(x, y, text, fg, i == 0)
	}
}
