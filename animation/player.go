package animation

import "time"

// Animated is implemented by every species state machine
type Animated interface {
	// Animate advances the playing clip to now and returns the sprite row to show
	Animate(now time.Time) int
}

// Facing is the horizontal direction a sprite is drawn in
type Facing int

const (
	Right Facing = iota
	Left
)

// Player holds one clip per tag K and plays exactly one of them
type Player[K ~int] struct {
	clips   []Clip
	playing K
	wraps   map[K]K
}

func newPlayer[K ~int](now time.Time, initial K, clips []Clip) Player[K] {
	p := Player[K]{clips: clips, wraps: make(map[K]K)}
	p.Set(initial, now)
	return p
}

// OnWrap switches to the to clip whenever from completes a cycle
func (p *Player[K]) OnWrap(from, to K) {
	p.wraps[from] = to
}

// Set switches clips, the new clip always restarts from its first frame
func (p *Player[K]) Set(tag K, now time.Time) {
	p.playing = tag
	p.clips[tag].Reset(now)
}

// Playing returns the active tag
func (p *Player[K]) Playing() K { return p.playing }

// Clip returns the active clip
func (p *Player[K]) Clip() *Clip { return &p.clips[p.playing] }

// FrameIndex returns the sprite row of the active clip without advancing it
func (p *Player[K]) FrameIndex() int { return p.clips[p.playing].Index() }

// Animate advances the active clip, applying wrap rules in the same tick
func (p *Player[K]) Animate(now time.Time) int {
	c := p.Clip()
	idx, changed := c.Update(now)
	if changed && c.Wrapped() {
		if to, ok := p.wraps[p.playing]; ok {
			p.Set(to, now)
			return p.FrameIndex()
		}
	}
	return idx
}
