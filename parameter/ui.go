package parameter

// Layout & Margins
const (
	// TopMargin for the title line
	TopMargin = 1

	// BottomMargin for the status bar
	BottomMargin = 1

	// DetailWidth, DetailHeight size the token detail panel in cells
	DetailWidth  = 54
	DetailHeight = 13
)

// Status Bar Text
const (
	ViewTextBubbles = " BUBBLES "
	ViewTextTable   = "  TABLE  "
	AudioStr        = "♫ "
	TitleText       = "> token-bubbles"
)

// Price-change thresholds for bubble tint
const (
	StrongChangePct = 5.0
)
