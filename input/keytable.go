package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	IntentType IntentType
	ScrollDir  ScrollDir
	Count      int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings valid in every view
	Runes map[rune]KeyEntry

	// Rune bindings only valid in the table view
	TableRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyTab:    {IntentType: IntentToggleView},
			tcell.KeyEnter:  {IntentType: IntentConfirm},
			tcell.KeyUp:     {IntentType: IntentScroll, ScrollDir: ScrollUp, Count: 1},
			tcell.KeyDown:   {IntentType: IntentScroll, ScrollDir: ScrollDown, Count: 1},
			tcell.KeyPgUp:   {IntentType: IntentScroll, ScrollDir: ScrollUp, Count: 10},
			tcell.KeyPgDn:   {IntentType: IntentScroll, ScrollDir: ScrollDown, Count: 10},
		},

		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			's': {IntentType: IntentToggleSound},
			'm': {IntentType: IntentToggleMode},
			'r': {IntentType: IntentRefresh},
			'[': {IntentType: IntentPrevList},
			']': {IntentType: IntentNextList},
			'1': {IntentType: IntentTimeframe, Count: 0},
			'2': {IntentType: IntentTimeframe, Count: 1},
			'3': {IntentType: IntentTimeframe, Count: 2},
			'4': {IntentType: IntentTimeframe, Count: 3},
		},

		TableRunes: map[rune]KeyEntry{
			'o': {IntentType: IntentSortNext},
			'O': {IntentType: IntentSortReverse},
			'j': {IntentType: IntentScroll, ScrollDir: ScrollDown, Count: 1},
			'k': {IntentType: IntentScroll, ScrollDir: ScrollUp, Count: 1},
		},
	}
}
