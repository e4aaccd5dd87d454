package parameter

import "time"

// Loop timing
const (
	// FrameInterval is the reference frame the per-frame velocities are tuned for
	FrameInterval = time.Second / 60

	// DefaultFPS is the frame rate of the host loop
	DefaultFPS = 60

	// EventBuffer is the capacity of the terminal event channel
	EventBuffer = 128

	// SelectionQueueSize bounds unconsumed selection events
	SelectionQueueSize = 64
)
