package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player plays gameplay cues without blocking or reporting failure
type Player interface {
	Play(sound SoundType)
}

// AudioEngine mixes cue streamers into the speaker
type AudioEngine struct {
	mu       sync.Mutex
	config   *AudioConfig
	mixer    *beep.Mixer
	ambience *beep.Ctrl
	running  bool
	muted    bool
}

// NewAudioEngine creates an audio engine, the speaker is opened by Start
func NewAudioEngine(cfg ...*AudioConfig) *AudioEngine {
	config := DefaultAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}
	return &AudioEngine{
		config: config,
		mixer:  &beep.Mixer{},
		muted:  !config.Enabled,
	}
}

// Start opens the speaker and begins mixing
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running {
		return ErrAlreadyStarted
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	bufferSize := rate.N(time.Duration(ae.config.BufferDuration) * time.Millisecond)
	if err := speaker.Init(rate, bufferSize); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(ae.mixer)
	ae.running = true

	if ae.config.Ambience {
		ae.startAmbience()
	}
	return nil
}

// startAmbience loops the background drone, caller holds mu
func (ae *AudioEngine) startAmbience() {
	if ae.ambience != nil {
		return
	}
	rate := beep.SampleRate(ae.config.SampleRate)
	drone := newVolume(NewAmbienceGenerator(rate), ae.config.AmbienceVolume*ae.config.MasterVolume)
	ae.ambience = &beep.Ctrl{Streamer: drone, Paused: ae.muted}

	speaker.Lock()
	ae.mixer.Add(ae.ambience)
	speaker.Unlock()
}

// Stop silences everything and closes the speaker
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running {
		return
	}
	speaker.Clear()
	speaker.Close()
	ae.ambience = nil
	ae.running = false
}

// Play queues a cue. Muted engines, unknown cues and a full mixer drop it silently.
func (ae *AudioEngine) Play(sound SoundType) {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running || ae.muted {
		return
	}
	streamer := GetSoundEffect(sound, ae.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if ae.mixer.Len() >= ae.config.MaxConcurrentFX {
		log.Printf("audio: mixer full, dropping %s", sound)
		return
	}
	ae.mixer.Add(streamer)
}

// ToggleMute flips the mute state and returns the new value
func (ae *AudioEngine) ToggleMute() bool {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	ae.muted = !ae.muted
	if ae.ambience != nil {
		speaker.Lock()
		ae.ambience.Paused = ae.muted
		speaker.Unlock()
	}
	return ae.muted
}

// IsMuted reports the mute state
func (ae *AudioEngine) IsMuted() bool {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.muted
}
