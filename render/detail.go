package render

import (
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/parameter"
)

const detailLabelWidth = 12

// drawDetail renders the selected token panel centered on screen
func (r *TerminalRenderer) drawDetail(e *core.Entity, tf core.Timeframe) {
	w := min(parameter.DetailWidth, r.width-2)
	h := min(parameter.DetailHeight, r.height-2)
	if w < 20 || h < 5 {
		return
	}
	x0 := (r.width - w) / 2
	y0 := (r.height - h) / 2

	r.buf.FillRect(x0, y0, w, h, RgbPanelBg)
	r.drawBox(x0, y0, w, h)

	title := " " + e.Symbol
	if e.Name != "" && e.Name != e.Symbol {
		title += " · " + e.Name
	}
	title = truncate(title+" ", w-4)
	r.buf.Text(x0+2, y0, title, RgbTitle, true)

	rows := []struct {
		label string
		value string
		fg    RGB
	}{
		{"Price", EntityPrice(e), RgbText},
		{"Change " + tf.String(), FormatPct(e.PriceChangePct), ChangeColor(e.PriceChangePct)},
		{"Market cap", FormatUSD(e.MarketCap), RgbText},
		{"Volume 24h", FormatUSD(e.Volume24h), RgbText},
		{"Liquidity", FormatUSD(e.Liquidity), RgbText},
		{"Chain", e.Chain, RgbText},
		{"DEX", e.DexID, RgbText},
		{"Contract", e.Contract, RgbText},
		{"Pair", e.PairAddress, RgbText},
		{"URL", e.URL, RgbDim},
	}

	inner := w - 4
	y := y0 + 1
	for _, row := range rows {
		if y >= y0+h-2 {
			break
		}
		value := row.value
		if value == "" {
			value = "-"
		}
		r.buf.Text(x0+2, y, pad(row.label, detailLabelWidth, false), RgbDim, false)
		r.buf.Text(x0+2+detailLabelWidth, y, truncate(value, inner-detailLabelWidth), row.fg, false)
		y++
	}

	hint := truncate("enter/esc close", inner)
	r.buf.Text(x0+w-2-len([]rune(hint)), y0+h-2, hint, RgbDim, false)
}

func (r *TerminalRenderer) drawBox(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		r.buf.SetFgOnly(x+i, y, '─', RgbBorder, false)
		r.buf.SetFgOnly(x+i, y+h-1, '─', RgbBorder, false)
	}
	for j := 1; j < h-1; j++ {
		r.buf.SetFgOnly(x, y+j, '│', RgbBorder, false)
		r.buf.SetFgOnly(x+w-1, y+j, '│', RgbBorder, false)
	}
	r.buf.SetFgOnly(x, y, '┌', RgbBorder, false)
	r.buf.SetFgOnly(x+w-1, y, '┐', RgbBorder, false)
	r.buf.SetFgOnly(x, y+h-1, '└', RgbBorder, false)
	r.buf.SetFgOnly(x+w-1, y+h-1, '┘', RgbBorder, false)
}
