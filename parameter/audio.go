package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioBufferTime = 100 * time.Millisecond
)

// Effect shapes
const (
	SelectToneHz       = 880.0
	SelectDuration     = 60 * time.Millisecond
	ReleaseDuration    = 180 * time.Millisecond
	ReleaseSweepLowHz  = 120.0
	ReleaseSweepHighHz = 360.0
	EffectVolume       = 0.2
)
