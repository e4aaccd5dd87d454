package render

import (
	"fmt"

	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/parameter"
)

// drawStatusBar draws view, audio, list and data state on the bottom line
func (r *TerminalRenderer) drawStatusBar(f engine.Frame) {
	y := r.height - 1
	if y < 1 {
		return
	}

	// View indicator
	viewText, viewBg := parameter.ViewTextBubbles, RgbViewBubblesBg
	if f.View == engine.ViewTable {
		viewText, viewBg = parameter.ViewTextTable, RgbViewTableBg
	}
	x := r.buf.TextWithBg(0, y, viewText, RgbStatusText, viewBg)

	// Audio indicator, always visible
	audioBg := RgbAudioMuted
	if f.Status.Sound {
		audioBg = RgbAudioUnmuted
	}
	x = r.buf.TextWithBg(x, y, parameter.AudioStr, RgbStatusText, audioBg)
	x++

	list := f.Status.List
	if list == "" {
		list = "-"
	}
	info := fmt.Sprintf("%s │ %s │ size:%s │ %d tokens", list, f.Timeframe, f.Mode, len(f.Entities))
	x = r.buf.Text(x, y, info, RgbText, false)

	switch {
	case f.Status.Loading:
		x = r.buf.Text(x+2, y, "loading…", RgbLoading, false)
	case f.Status.Err != "":
		x = r.buf.Text(x+2, y, truncate(f.Status.Err, r.width-x-2), RgbError, false)
	}

	if !f.Status.UpdatedAt.IsZero() {
		stamp := "updated " + f.Status.UpdatedAt.Format("15:04:05")
		sx := r.width - len(stamp) - 1
		if sx > x+1 {
			r.buf.Text(sx, y, stamp, RgbDim, false)
		}
	}
}
