package system

import (
	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// ViewportSystem scrolls just enough to keep the leader sprite inside the inset box
type ViewportSystem struct{}

func (ViewportSystem) Name() string { return "viewport" }

func (ViewportSystem) Access() []engine.Access {
	return []engine.Access{
		engine.WritesUnique[component.Viewport](),
		engine.Reads[component.Position](),
		engine.Reads[component.Sprite](),
		engine.Reads[*animation.Jean](),
	}
}

func (ViewportSystem) Run(w *engine.World) {
	vp, ok := engine.UniqueMut[component.Viewport](w)
	if !ok {
		return
	}
	leader, ok := leaderOf(w)
	if !ok {
		return
	}
	pos, ok := engine.ViewOf[component.Position](w).Get(leader)
	if !ok {
		return
	}
	sprite, ok := engine.ViewOf[component.Sprite](w).Get(leader)
	if !ok {
		return
	}
	vp.Pos = vp.Pos.Add(ViewportOverflow(*vp, pos, sprite.Size()))
}

// ViewportOverflow returns how far the sprite pokes out of the inset box on each axis
func ViewportOverflow(vp component.Viewport, pos component.Position, size vmath.Vec2) vmath.Vec2 {
	screen := vp.WorldToScreen(pos, size.X, size.Y)
	var shift vmath.Vec2

	if d := parameter.ViewportBoundsMinX - screen.X; d > 0 {
		shift.X = -d
	} else if d := screen.X + size.X - parameter.ViewportBoundsMaxX; d > 0 {
		shift.X = d
	}
	if d := parameter.ViewportBoundsMinY - screen.Y; d > 0 {
		shift.Y = -d
	} else if d := screen.Y + size.Y - parameter.ViewportBoundsMaxY; d > 0 {
		shift.Y = d
	}
	return shift
}
