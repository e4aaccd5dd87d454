package input

// InputMode mirrors the active view for parser context
// Kept in sync by the host via SetMode()
type InputMode uint8

const (
	ModeBubbles InputMode = iota
	ModeTable
	ModeDetail // Detail panel open over either view
)
