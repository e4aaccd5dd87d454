package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/token-bubbles/parameter"
	"github.com/lixenwraith/token-bubbles/vmath"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays the selection and release cues
// Every method is safe without Initialize, audio is optional
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewSoundManager creates an enabled, uninitialized manager
func NewSoundManager(enabled bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferTime)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Available reports whether a device was opened
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Enabled reports the user toggle
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// SetEnabled sets the user toggle
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = on
}

// Toggle flips the user toggle and returns the new state
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return sm.enabled
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, clearing the mixer silences it
	sm.initialized = false
}

// PlaySelect plays a short bright tone when a bubble is clicked
func (sm *SoundManager) PlaySelect() {
	sm.play(beep.Take(sampleRate.N(parameter.SelectDuration),
		NewToneGenerator(sampleRate, parameter.SelectToneHz, parameter.EffectVolume, parameter.SelectDuration.Seconds())))
}

// PlayRelease plays a falling whoosh scaled by the throw speed in units per frame
func (sm *SoundManager) PlayRelease(speed float64) {
	intensity := vmath.Clamp(speed/parameter.MaxReleaseSpeed, 0.3, 1)
	sm.play(beep.Take(sampleRate.N(parameter.ReleaseDuration),
		NewSweepGenerator(sampleRate, parameter.ReleaseSweepHighHz, parameter.ReleaseSweepLowHz,
			parameter.EffectVolume*intensity, parameter.ReleaseDuration.Seconds())))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToneGenerator generates a sine tone with a short attack and exponential fade
type ToneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	volume   float64
	duration float64 // seconds, shapes the fade
	pos      int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq, volume, duration float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, volume: volume, duration: duration}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids a click
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*4/math.Max(g.duration, 1e-3))
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides between two frequencies with a rise and fall envelope
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	duration float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another over duration seconds
func NewSweepGenerator(sr beep.SampleRate, from, to, volume, duration float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, volume: volume, duration: math.Max(duration, 1e-3)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		p := vmath.Clamp(t/g.duration, 0, 1)

		// Phase accumulates so the glide stays continuous
		freq := vmath.Lerp(g.from, g.to, p)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Sin(p * math.Pi)
		sample := g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
