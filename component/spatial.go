package component

import (
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/vmath"
)

// Space selects whether a position scrolls with the viewport
type Space int

const (
	SpaceWorld Space = iota
	SpaceScreen
)

// Position is ground-plane X/Z with unused height Y. Screen-space positions are top-left pixels in X/Y.
type Position struct {
	Vec   vmath.Vec3
	Space Space
}

// Velocity is this tick's displacement, already scaled by elapsed time
type Velocity struct {
	Vec vmath.Vec3
}

// Follow binds a dependent to its leader. Target may go stale, lookups must tolerate that.
type Follow struct {
	Target    engine.Entity
	Direction vmath.Vec3
}

// Collision holds the static level geometry, built once per world
type Collision struct {
	Shapes []vmath.Rect
}

// Intersects reports whether a circle at p touches any shape
func (c Collision) Intersects(p vmath.Vec3, radius float32) bool {
	return vmath.AnyCircleIntersects(c.Shapes, p, radius)
}

// Viewport is the scroll offset of the screen inside the world image
type Viewport struct {
	Pos         vmath.Vec2
	WorldHeight float32
}

// WorldToScreen returns the top-left pixel of a w x h sprite anchored at pos.
// World positions anchor at the bottom centre and flip Z into screen Y.
func (v Viewport) WorldToScreen(pos Position, w, h float32) vmath.Vec2 {
	if pos.Space == SpaceScreen {
		return vmath.Vec2{X: pos.Vec.X, Y: pos.Vec.Y}
	}
	p := vmath.Vec2{
		X: pos.Vec.X - w/2,
		Y: v.WorldHeight - (pos.Vec.Z + h),
	}
	return p.Floor().Sub(v.Pos.Floor())
}

// Wander is the heading a blob keeps for one bounce
type Wander struct {
	Direction vmath.Vec3
}
