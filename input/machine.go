package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/token-bubbles/core"
)

// Machine parses tcell events into semantic Intent
// Mouse button state is tracked here since terminals only report masks
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
	area     core.Area
	pressed  bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeBubbles,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's view context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
	if mode != ModeBubbles {
		m.pressed = false
	}
}

// Mode returns the parser's view context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// SetArea sets the layout area pointer coordinates are made local to
func (m *Machine) SetArea(area core.Area) {
	m.area = area
}

// Pressed reports whether the primary button is held
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Process parses a tcell event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if m.mode == ModeTable {
			if entry, ok := m.keyTable.TableRunes[r]; ok {
				return entryIntent(entry)
			}
		}
		if entry, ok := m.keyTable.Runes[r]; ok {
			return entryIntent(entry)
		}
		return nil
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		if entry.IntentType == IntentScroll && m.mode != ModeTable {
			return nil
		}
		return entryIntent(entry)
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	switch m.mode {
	case ModeBubbles:
		pe, pressed, ok := TranslateMouse(ev, m.area, m.pressed)
		m.pressed = pressed
		if !ok {
			return nil
		}
		return &Intent{Type: IntentPointer, Pointer: pe}
	case ModeTable:
		if w := Wheel(ev); w != 0 {
			return &Intent{Type: IntentScroll, ScrollDir: ScrollDir(w), Count: 3}
		}
	}
	return nil
}

func entryIntent(entry KeyEntry) *Intent {
	return &Intent{
		Type:      entry.IntentType,
		ScrollDir: entry.ScrollDir,
		Count:     entry.Count,
	}
}
