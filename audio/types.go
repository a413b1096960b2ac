package audio

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/core"
)

// SoundType aliases the gameplay cue ids
type SoundType = core.SoundType

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled         bool
	Ambience        bool
	MasterVolume    float64
	AmbienceVolume  float64
	EffectVolumes   map[SoundType]float64
	SampleRate      int
	BufferDuration  int // milliseconds
	MaxConcurrentFX int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:        true,
		Ambience:       true,
		MasterVolume:   0.5,
		AmbienceVolume: 0.3,
		EffectVolumes: map[SoundType]float64{
			core.SoundJump:  0.6,
			core.SoundSplat: 0.8,
			core.SoundDeath: 1.0,
		},
		SampleRate:      44100,
		BufferDuration:  100,
		MaxConcurrentFX: 8,
	}
}

// Sentinel errors
var (
	ErrAlreadyStarted = errors.New("audio engine already running")
)
