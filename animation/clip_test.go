package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Unix(1700000000, 0)

func TestClipWrapsAfterFullCycle(t *testing.T) {
	clips := map[string]Clip{
		"uniform":    NewClip(Run(3, 6, 50*time.Millisecond)...),
		"asymmetric": NewClip(append(Run(0, 3, 100*time.Millisecond), Frame{4, 200 * time.Millisecond})...),
		"fire":       NewFire(epoch, testRand()).Clip().clone(),
	}
	for name, c := range clips {
		t.Run(name, func(t *testing.T) {
			c.Seek(0)
			c.Reset(epoch)
			first := c.Index()
			now := epoch
			for i := 0; i < c.Len(); i++ {
				now = now.Add(c.frames[c.Cursor()].Duration + time.Millisecond)
				_, changed := c.Update(now)
				require.True(t, changed)
			}
			assert.Equal(t, first, c.Index())
			assert.Equal(t, 0, c.Cursor())
		})
	}
}

func TestClipAdvancesOneFramePerUpdate(t *testing.T) {
	c := NewClip(Run(0, 3, 10*time.Millisecond)...)
	c.Reset(epoch)

	idx, changed := c.Update(epoch.Add(time.Hour))
	assert.True(t, changed)
	assert.Equal(t, 1, idx, "a long stall still moves a single frame")
}

func TestClipExactDurationDoesNotAdvance(t *testing.T) {
	c := NewClip(Run(0, 1, 100*time.Millisecond)...)
	c.Reset(epoch)

	_, changed := c.Update(epoch.Add(100 * time.Millisecond))
	assert.False(t, changed, "duration must be exceeded, not reached")
	_, changed = c.Update(epoch.Add(101 * time.Millisecond))
	assert.True(t, changed)
}

func TestSingleFrameClipNeverChanges(t *testing.T) {
	c := NewClip(Frame{7, time.Millisecond})
	c.Reset(epoch)
	for _, d := range []time.Duration{0, time.Millisecond, time.Second, 24 * time.Hour} {
		idx, changed := c.Update(epoch.Add(d))
		assert.False(t, changed)
		assert.Equal(t, 7, idx)
	}
}

func TestSeekWraps(t *testing.T) {
	c := NewClip(Run(0, 2, time.Second)...)
	c.Seek(4)
	assert.Equal(t, 1, c.Cursor())
	c.Seek(-1)
	assert.Equal(t, 2, c.Cursor())
}

func TestEmptyClipPanics(t *testing.T) {
	assert.Panics(t, func() { NewClip() })
}

func TestCycle(t *testing.T) {
	c := NewClip(append(Run(0, 3, 100*time.Millisecond), Frame{4, 200 * time.Millisecond})...)
	assert.Equal(t, 600*time.Millisecond, c.Cycle())
}
