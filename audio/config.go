package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/sombervale/core"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled  = "SOMBERVALE_AUDIO_ENABLED"
	EnvMasterVolume  = "SOMBERVALE_MASTER_VOLUME"
	EnvSFXVolumes    = "SOMBERVALE_SFX_VOLUMES"
	EnvSampleRate    = "SOMBERVALE_SAMPLE_RATE"
	EnvAmbienceLevel = "SOMBERVALE_AMBIENCE_VOLUME"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}
	if volume := os.Getenv(EnvAmbienceLevel); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.AmbienceVolume = clampUnit(float64(val) / 100.0)
			cfg.Ambience = cfg.AmbienceVolume > 0
		}
	}

	// Effect volumes from JSON keyed by cue name, e.g. {"jump":0.4}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := core.ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
