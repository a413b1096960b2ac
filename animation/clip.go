package animation

import "time"

// Frame is one sprite-sheet row shown for Duration
type Frame struct {
	Index    int
	Duration time.Duration
}

// Clip plays frames in order and wraps. Each frame carries its own duration.
type Clip struct {
	frames []Frame
	cursor int
	start  time.Time
}

// NewClip builds a clip, panics on an empty frame list
func NewClip(frames ...Frame) Clip {
	if len(frames) == 0 {
		panic("animation: clip without frames")
	}
	return Clip{frames: frames}
}

// Run builds frames for consecutive rows first..last sharing one duration
func Run(first, last int, d time.Duration) []Frame {
	frames := make([]Frame, 0, last-first+1)
	for i := first; i <= last; i++ {
		frames = append(frames, Frame{Index: i, Duration: d})
	}
	return frames
}

// Update advances at most one frame once the time since the last change exceeds the current
// frame's duration. Returns the row index and whether it changed.
func (c *Clip) Update(now time.Time) (int, bool) {
	if len(c.frames) < 2 {
		return c.frames[c.cursor].Index, false
	}
	if now.Sub(c.start) <= c.frames[c.cursor].Duration {
		return c.frames[c.cursor].Index, false
	}
	c.cursor = (c.cursor + 1) % len(c.frames)
	c.start = now
	return c.frames[c.cursor].Index, true
}

// Reset rewinds to the first frame and restarts the frame clock
func (c *Clip) Reset(now time.Time) {
	c.cursor = 0
	c.start = now
}

// Seek moves the cursor, wrapping out-of-range values
func (c *Clip) Seek(cursor int) {
	n := len(c.frames)
	c.cursor = ((cursor % n) + n) % n
}

// Index is the sprite row of the current frame
func (c *Clip) Index() int { return c.frames[c.cursor].Index }

// Cursor is the position inside the frame list
func (c *Clip) Cursor() int { return c.cursor }

func (c *Clip) Len() int { return len(c.frames) }

// Wrapped reports whether the last Update landed back on the first frame
func (c *Clip) Wrapped() bool { return c.cursor == 0 && len(c.frames) > 1 }

// Cycle returns the summed duration of every frame
func (c *Clip) Cycle() time.Duration {
	var total time.Duration
	for _, f := range c.frames {
		total += f.Duration
	}
	return total
}
