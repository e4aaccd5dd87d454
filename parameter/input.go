package parameter

import "time"

// Pointer gesture classification
const (
	// DragThreshold is the pointer displacement in layout units that turns a press into a drag
	DragThreshold = 4.0

	// ClickMaxDuration is the longest press still counted as a click
	ClickMaxDuration = 350 * time.Millisecond

	// MaxReleaseSpeed caps momentum handed back on release
	MaxReleaseSpeed = 25.0
)

// Terminal cell size in layout units, keeps circles round on a 1:2 cell grid
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)
