package render

import (
	"fmt"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/market"
)

// Table is the flattened list view state: sort column, direction and cursor
type Table struct {
	Key    market.SortKey
	Asc    bool
	Cursor int
	Offset int

	rows []core.Entity
}

// NewTable starts sorted by market cap, largest first
func NewTable() *Table {
	return &Table{Key: market.SortMarketCap}
}

// CycleKey moves to the next sort column, text columns start ascending
func (t *Table) CycleKey() {
	t.Key = t.Key.Next()
	t.Asc = t.Key == market.SortSymbol || t.Key == market.SortChain
	t.Cursor, t.Offset = 0, 0
}

// Reverse flips the sort direction
func (t *Table) Reverse() {
	t.Asc = !t.Asc
	t.Cursor, t.Offset = 0, 0
}

// Scroll moves the cursor by delta rows, clamped on the next draw
func (t *Table) Scroll(delta int) {
	t.Cursor += delta
	t.clamp()
}

// Rows returns entities in table order and remembers them for Current
func (t *Table) Rows(entities []core.Entity) []core.Entity {
	rows := make([]core.Entity, len(entities))
	copy(rows, entities)
	market.Sort(rows, t.Key, t.Asc)
	t.rows = rows
	t.clamp()
	return rows
}

// Current returns the row under the cursor of the last sort
func (t *Table) Current() (core.Entity, bool) {
	if t.Cursor < 0 || t.Cursor >= len(t.rows) {
		return core.Entity{}, false
	}
	return t.rows[t.Cursor], true
}

func (t *Table) clamp() {
	if t.Cursor >= len(t.rows) {
		t.Cursor = len(t.rows) - 1
	}
	if t.Cursor < 0 {
		t.Cursor = 0
	}
}

// follow keeps the cursor inside a window of visible rows
func (t *Table) follow(visible int) {
	if visible < 1 {
		visible = 1
	}
	if t.Cursor < t.Offset {
		t.Offset = t.Cursor
	}
	if t.Cursor >= t.Offset+visible {
		t.Offset = t.Cursor - visible + 1
	}
	if maxOff := len(t.rows) - visible; t.Offset > maxOff {
		t.Offset = max(0, maxOff)
	}
}

type column struct {
	title  string
	width  int
	key    market.SortKey
	sorted bool // column participates in sorting
	right  bool
	value  func(idx int, e *core.Entity) string
}

func tableColumns(tf core.Timeframe) []column {
	return []column{
		{title: "#", width: 4, right: true, value: func(i int, _ *core.Entity) string { return fmt.Sprint(i + 1) }},
		{title: "SYMBOL", width: 12, key: market.SortSymbol, sorted: true, value: func(_ int, e *core.Entity) string { return e.Symbol }},
		{title: "CHAIN", width: 10, key: market.SortChain, sorted: true, value: func(_ int, e *core.Entity) string { return e.Chain }},
		{title: "PRICE", width: 14, key: market.SortPrice, sorted: true, right: true, value: func(_ int, e *core.Entity) string { return EntityPrice(e) }},
		{title: tf.String(), width: 10, key: market.SortChange, sorted: true, right: true, value: func(_ int, e *core.Entity) string { return FormatPct(e.PriceChangePct) }},
		{title: "MCAP", width: 11, key: market.SortMarketCap, sorted: true, right: true, value: func(_ int, e *core.Entity) string { return FormatUSD(e.MarketCap) }},
		{title: "VOL 24H", width: 11, key: market.SortVolume, sorted: true, right: true, value: func(_ int, e *core.Entity) string { return FormatUSD(e.Volume24h) }},
		{title: "LIQUIDITY", width: 11, key: market.SortLiquidity, sorted: true, right: true, value: func(_ int, e *core.Entity) string { return FormatUSD(e.Liquidity) }},
	}
}

// fitColumns drops trailing columns that do not fit in width
func fitColumns(cols []column, width int) []column {
	used := 0
	for i, c := range cols {
		used += c.width + 1
		if used > width {
			return cols[:max(i, 1)]
		}
	}
	return cols
}

func pad(s string, width int, right bool) string {
	s = truncate(s, width)
	if right {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}

func (r *TerminalRenderer) drawTable(f engine.Frame, area core.Area) {
	t := r.table
	rows := t.Rows(f.Entities)
	if len(rows) == 0 {
		msg := "no tokens"
		if f.Status.Loading {
			msg = "loading…"
		}
		r.drawCentered(area.Y+area.Height/2, msg, RgbDim)
		return
	}

	cols := fitColumns(tableColumns(f.Timeframe), area.Width)

	// Header
	x := area.X
	for _, c := range cols {
		title := c.title
		fg := RgbDim
		if c.sorted && c.key == t.Key {
			fg = RgbTitle
			if t.Asc {
				title += "↑"
			} else {
				title += "↓"
			}
		}
		x = r.buf.Text(x, area.Y, pad(title, c.width, c.right), fg, true) + 1
	}

	visible := area.Height - 1
	t.follow(visible)

	for line := 0; line < visible; line++ {
		idx := t.Offset + line
		if idx >= len(rows) {
			break
		}
		e := &rows[idx]
		y := area.Y + 1 + line
		if idx == t.Cursor {
			r.buf.FillRect(area.X, y, area.Width, 1, RgbRowCursor)
		}
		x := area.X
		for _, c := range cols {
			fg := RgbText
			if c.key == market.SortChange && c.sorted {
				fg = ChangeColor(e.PriceChangePct)
			}
			x = r.buf.Text(x, y, pad(c.value(idx, e), c.width, c.right), fg, false) + 1
		}
	}
}
