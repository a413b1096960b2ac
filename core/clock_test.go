package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewMockClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), c.Now())

	c.SetTime(start)
	assert.Equal(t, start, c.Now())
}

func TestSystemClockMonotonic(t *testing.T) {
	var c Clock = NewSystemClock()
	a := c.Now()
	b := c.Now()
	assert.False(t, b.Before(a))
}

func TestSoundTypeNames(t *testing.T) {
	for s := SoundType(0); s < SoundTypeCount; s++ {
		parsed, ok := ParseSoundType(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	_, ok := ParseSoundType("whoosh")
	assert.False(t, ok)
	assert.Equal(t, "unknown", SoundTypeCount.String())
}
