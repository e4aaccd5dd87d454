package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentEscape      // ESC (closes detail, otherwise quits)
	IntentToggleSound // s
	IntentResize      // Terminal resize event

	// View control
	IntentToggleView // Tab
	IntentToggleMode // m
	IntentTimeframe  // 1-4, Count carries the timeframe index
	IntentPrevList   // [
	IntentNextList   // ]
	IntentRefresh    // r
	IntentConfirm    // Enter

	// Table view
	IntentSortNext    // o, cycles sort column
	IntentSortReverse // O, flips direction
	IntentScroll      // j/k, arrows, PgUp/PgDn, wheel

	// Pointer gesture step, Pointer carries the event
	IntentPointer
)

// ScrollDir for table navigation
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type      IntentType
	ScrollDir ScrollDir
	Count     int // Timeframe index or scroll rows
	Pointer   PointerEvent
}
