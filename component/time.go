package component

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// UpdateTime samples the clock once per tick so every system sees the same instant and delta.
// Copies share the sample, systems may read it through a shared borrow.
type UpdateTime struct {
	s *tickSample
}

type tickSample struct {
	clock   core.Clock
	last    time.Time
	now     time.Time
	sampled bool
}

func NewUpdateTime(clock core.Clock) UpdateTime {
	now := clock.Now()
	return UpdateTime{s: &tickSample{clock: clock, last: now, now: now}}
}

func (u UpdateTime) sample() {
	if !u.s.sampled {
		u.s.now = u.s.clock.Now()
		u.s.sampled = true
	}
}

// Now returns this tick's sample
func (u UpdateTime) Now() time.Time {
	u.sample()
	return u.s.now
}

// Elapsed returns the time between the previous tick's sample and this one
func (u UpdateTime) Elapsed() time.Duration {
	u.sample()
	return u.s.now.Sub(u.s.last)
}

// Seconds returns Elapsed as float seconds for velocity scaling
func (u UpdateTime) Seconds() float32 {
	return float32(u.Elapsed().Seconds())
}

// Refresh closes the tick, the next sample measures from this one
func (u UpdateTime) Refresh() {
	u.sample()
	u.s.last = u.s.now
	u.s.sampled = false
}

// Random is the world's single gameplay random stream
type Random struct {
	Rand *vmath.FastRand
}

// Outro fades the world out after the leader dies, then the world is rebuilt
type Outro struct {
	Start time.Time
	Fade  float32
	tween *gween.Tween
}

func NewOutro(start time.Time) Outro {
	return Outro{
		Start: start,
		Fade:  1,
		tween: gween.New(1, 0, float32(parameter.OutroDuration.Seconds()), ease.Linear),
	}
}

// Update evaluates the fade at now and reports whether it reached zero
func (o *Outro) Update(now time.Time) bool {
	elapsed := float32(now.Sub(o.Start).Seconds())
	if o.tween == nil {
		o.tween = gween.New(1, 0, float32(parameter.OutroDuration.Seconds()), ease.Linear)
	}
	fade, done := o.tween.Set(elapsed)
	if fade < 0 {
		fade = 0
	}
	o.Fade = fade
	if done {
		o.Fade = 0
	}
	return done
}
