package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/vmath"
)

func TestUpdateTimeStableWithinTick(t *testing.T) {
	clock := core.NewMockClock(epoch)
	u := NewUpdateTime(clock)

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, u.Elapsed())
	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, u.Elapsed(), "sample is fixed until refresh")
	assert.Equal(t, epoch.Add(16*time.Millisecond), u.Now())

	u.Refresh()
	assert.Equal(t, 5*time.Millisecond, u.Elapsed(), "no time is lost between ticks")
	assert.InDelta(t, 0.005, u.Seconds(), 1e-6)
}

func TestOutroFadesLinearly(t *testing.T) {
	o := NewOutro(epoch)
	assert.Equal(t, float32(1), o.Fade)

	assert.False(t, o.Update(epoch.Add(time.Second)))
	assert.InDelta(t, 0.5, o.Fade, 1e-3)

	assert.True(t, o.Update(epoch.Add(2*time.Second)))
	assert.Equal(t, float32(0), o.Fade)
}

func TestDeathQueueDeduplicates(t *testing.T) {
	var q DeathQueue
	e := engine.Entity(7)
	assert.True(t, q.Queue(e))
	assert.False(t, q.Queue(e))
	assert.True(t, q.Queued(e))

	assert.Equal(t, []engine.Entity{e}, q.Drain())
	assert.False(t, q.Queued(e))
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Queue(e), "drained entities can be queued again")
}

func TestWorldToScreen(t *testing.T) {
	v := Viewport{Pos: vmath.Vec2{X: 10.7, Y: 4.2}, WorldHeight: 200}
	pos := Position{Vec: vmath.Vec3{X: 50.5, Z: 30}}

	got := v.WorldToScreen(pos, 16, 32)
	// x: floor(50.5-8)=42, minus floor(10.7)=10; y: floor(200-62)=138, minus 4
	assert.Equal(t, vmath.Vec2{X: 32, Y: 134}, got)

	screen := Position{Vec: vmath.Vec3{X: 3, Y: 4}, Space: SpaceScreen}
	assert.Equal(t, vmath.Vec2{X: 3, Y: 4}, v.WorldToScreen(screen, 16, 32))
}

func TestAudioNilPlayerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() { Audio{}.Play(core.SoundDeath) })
	r := &RecordingPlayer{}
	Audio{Player: r}.Play(core.SoundJump)
	assert.Equal(t, []core.SoundType{core.SoundJump}, r.Played)
}

func TestRecordingPlayerCounts(t *testing.T) {
	var p SoundPlayer = &RecordingPlayer{}
	p.Play(core.SoundJump)
	p.Play(core.SoundJump)
	p.Play(core.SoundDeath)
	r := p.(*RecordingPlayer)
	assert.Equal(t, 2, r.Count(core.SoundJump))
	assert.Equal(t, 0, r.Count(core.SoundSplat))
	assert.NotPanics(t, func() { Audio{Player: NopPlayer{}}.Play(core.SoundDeath) })
}

func TestCollisionIntersects(t *testing.T) {
	c := Collision{Shapes: []vmath.Rect{{Pos: vmath.Vec2{X: 0, Y: 0}, Size: vmath.Vec2{X: 10, Y: 10}}}}
	assert.True(t, c.Intersects(vmath.Vec3{X: 12, Z: 5}, 5))
	assert.False(t, c.Intersects(vmath.Vec3{X: 16, Z: 5}, 5))
}
