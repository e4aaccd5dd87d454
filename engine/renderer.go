package engine

import (
	"time"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/sizing"
)

// Status is the host-facing state shown in the status bar
type Status struct {
	List      string
	Loading   bool
	Err       string
	Sound     bool
	UpdatedAt time.Time
}

// Frame is everything a renderer needs for one repaint
// Bodies is a copy of the live slice, renderers may keep it
type Frame struct {
	View      View
	Bodies    []core.Body
	Entities  []core.Entity
	Viewport  core.Viewport
	Mode      sizing.Mode
	Timeframe core.Timeframe
	Status    Status
	Selected  *core.Entity // Detail panel target, nil when closed
	Count     int64        // Frames ticked so far
}

// Renderer draws frames
type Renderer interface {
	Render(f Frame)
}
