package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + uint64(duration)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.noise.Float32NDC())
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto beep's log2 volume, zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateJumpSound generates a short rising chirp for a frog hop
func CreateJumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(320, 780, parameter.JumpSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)

	vol := cfg.EffectVolumes[core.SoundJump] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateSplatSound generates a wet thud for a blob bounce: noise over a low sine
func CreateSplatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.SplatSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate)

	body := NewSweep(140, 60, parameter.SplatSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, parameter.SplatSoundDuration, parameter.SplatSoundAttack, parameter.SplatSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.35),
		newVolume(bodyShaped, 0.65),
	)

	vol := cfg.EffectVolumes[core.SoundSplat] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateDeathSound generates a two-note falling square wave for the leader's death
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(392.0, parameter.DeathSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.DeathSoundNote1Duration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	n2 := NewSweep(261.63, 130.81, parameter.DeathSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.DeathSoundNote2Duration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[core.SoundDeath] * cfg.MasterVolume
	return newVolume(sequence, vol*0.5)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundJump:
		return CreateJumpSound(cfg)
	case core.SoundSplat:
		return CreateSplatSound(cfg)
	case core.SoundDeath:
		return CreateDeathSound(cfg)
	default:
		return nil
	}
}

// ambienceGenerator is a slow wind drone: two detuned low sines under a swelling envelope
type ambienceGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewAmbienceGenerator creates an endless background drone
func NewAmbienceGenerator(sr beep.SampleRate) beep.Streamer {
	return &ambienceGenerator{
		sr:      sr,
		samples: sr.N(parameter.AmbienceCycle),
	}
}

func (g *ambienceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)

		swell := 0.5 + 0.5*math.Sin(cyclePos*2*math.Pi)
		left := 0.1 * swell * math.Sin(2*math.Pi*55*t)
		right := 0.1 * swell * math.Sin(2*math.Pi*55.4*t)

		samples[i][0] = left
		samples[i][1] = right
		g.pos++
	}
	return len(samples), true
}

func (g *ambienceGenerator) Err() error { return nil }
