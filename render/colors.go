package render

import (
	"github.com/lixenwraith/token-bubbles/parameter"
)

// Price change tints
var (
	RgbStrongGain = Hex("#16a085")
	RgbGain       = Hex("#2ecc71")
	RgbStrongLoss = Hex("#c0392b")
	RgbLoss       = Hex("#e74c3c")
	RgbNeutral    = Hex("#3498db")
)

// Screen chrome
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbTitle      = RGB{255, 165, 0}   // Orange
	RgbText       = RGB{220, 220, 220} // Light gray
	RgbDim        = RGB{120, 120, 130} // Muted labels
	RgbBorder     = RGB{180, 180, 180} // Panel frame
	RgbPanelBg    = RGB{36, 40, 59}    // Slightly lifted panel
	RgbRowCursor  = RGB{60, 64, 90}    // Table cursor row

	RgbViewBubblesBg = RGB{135, 206, 250} // Light sky blue
	RgbViewTableBg   = RGB{144, 238, 144} // Light grass green
	RgbAudioMuted    = RGB{255, 80, 80}   // Red when muted
	RgbAudioUnmuted  = RGB{50, 255, 50}   // Green when unmuted
	RgbStatusText    = RGB{0, 0, 0}       // Dark text for status
	RgbLoading       = RGB{255, 255, 0}   // Yellow
	RgbError         = RGB{255, 80, 80}   // Error red
)

// ChangeColor maps a percent change to its bubble tint
func ChangeColor(pct float64) RGB {
	switch {
	case pct > parameter.StrongChangePct:
		return RgbStrongGain
	case pct > 0:
		return RgbGain
	case pct < -parameter.StrongChangePct:
		return RgbStrongLoss
	case pct < 0:
		return RgbLoss
	}
	return RgbNeutral
}
