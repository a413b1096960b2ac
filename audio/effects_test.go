package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sombervale/core"
)

// drain streams s to exhaustion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			require.LessOrEqual(t, buf[j][0], 1.0)
			require.GreaterOrEqual(t, buf[j][0], -1.0)
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		assert.Equal(t, rate.N(100*time.Millisecond), drain(t, osc))
		assert.NoError(t, osc.Err())
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		assert.True(t, v == 1 || v == -1, "sample %d = %f", i, v)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	_, ok := env.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 0.0, samples[0][0], "attack ramps from zero")
}

func TestEveryCueHasAStreamer(t *testing.T) {
	cfg := DefaultAudioConfig()
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		require.NotNil(t, streamer, s.String())
		assert.Positive(t, drain(t, streamer))
	}
	assert.Nil(t, GetSoundEffect(core.SoundTypeCount, cfg))
}

func TestAmbienceIsEndless(t *testing.T) {
	g := NewAmbienceGenerator(beep.SampleRate(22050))
	buf := make([][2]float64, 1024)
	for i := 0; i < 100; i++ {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
}

func TestEngineIgnoresPlayBeforeStart(t *testing.T) {
	ae := NewAudioEngine()
	assert.NotPanics(t, func() { ae.Play(core.SoundSplat) })
	assert.False(t, ae.IsMuted())
	assert.True(t, ae.ToggleMute())
}
