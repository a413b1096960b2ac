package system

import (
	"log"
	"reflect"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/asset"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/input"
	"github.com/lixenwraith/sombervale/level"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// WorldSource is everything needed to build the world again after an outro
type WorldSource struct {
	Level  *level.Level
	Sheets *asset.Sheets
	Clock  core.Clock
	Seed   uint64
}

// persistent uniques survive a world rebuild, they belong to the process, not to one world
var persistent = []reflect.Type{
	reflect.TypeFor[WorldSource](),
	reflect.TypeFor[component.Audio](),
	reflect.TypeFor[component.Debug](),
	reflect.TypeFor[component.Framebuffer](),
	reflect.TypeFor[component.UpdateTime](),
	reflect.TypeFor[component.Random](),
	reflect.TypeFor[input.Controls](),
}

// LoadWorld adds the world uniques and spawns the level. Process uniques already present are kept.
// Must run outside a workload or from a system declaring AllStorages.
func LoadWorld(w *engine.World) error {
	src, ok := engine.Unique[WorldSource](w)
	if !ok {
		return errors.Wrap(engine.ErrMissingUnique, "world source")
	}
	if src.Level == nil || src.Sheets == nil {
		return errors.New("world source has no level or sheets")
	}
	if src.Clock == nil {
		src.Clock = core.SystemClock{}
	}

	if !engine.HasUnique[component.UpdateTime](w) {
		engine.AddUnique(w, component.NewUpdateTime(src.Clock))
	}
	if !engine.HasUnique[component.Random](w) {
		engine.AddUnique(w, component.Random{Rand: vmath.NewFastRand(src.Seed)})
	}
	if !engine.HasUnique[input.Controls](w) {
		engine.AddUnique(w, input.Controls{})
	}
	if !engine.HasUnique[component.Audio](w) {
		engine.AddUnique(w, component.Audio{})
	}
	if !engine.HasUnique[component.Framebuffer](w) {
		engine.AddUnique(w, component.Framebuffer{Image: newFramebuffer()})
	}

	now := engine.MustUnique[component.UpdateTime](w).Now()
	lvl := src.Level

	engine.AddUnique(w, component.DeathQueue{})
	engine.AddUnique(w, component.NewJeanStats())
	engine.AddUnique(w, component.NewFrogPower(now))
	engine.AddUnique(w, component.Collision{Shapes: lvl.Shapes})
	engine.AddUnique(w, component.Viewport{WorldHeight: lvl.WorldHeight()})

	rows := make([][]engine.Part, 0, len(lvl.Layers))
	for i, layer := range lvl.Layers {
		rows = append(rows, []engine.Part{engine.With(component.Tilemap{
			Image:    layer.Image,
			Parallax: layer.Parallax,
			Order:    i,
		})})
	}
	if _, err := w.SpawnBulk(rows); err != nil {
		return errors.Wrap(err, "tilemap layers")
	}

	rng := engine.MustUnique[component.Random](w).Rand
	var leader *component.Position
	for _, sp := range lvl.Spawns {
		e, err := SpawnPoint(w, src.Sheets, sp, now, rng)
		if err != nil {
			return err
		}
		if sp.Name == SpawnJean && leader == nil {
			pos, _ := engine.ViewOf[component.Position](w).Get(e)
			leader = &pos
		}
	}

	if leader != nil {
		vp := engine.MustUniqueMut[component.Viewport](w)
		vp.Pos = vmath.Vec2{
			X: leader.Vec.X - parameter.ScreenWidth/2,
			Y: vp.WorldHeight - leader.Vec.Z - asset.JeanFrameHeight/2 - parameter.ScreenHeight/2,
		}.Floor()
	}

	log.Printf("world %q loaded: %d entities, %d shapes", lvl.Name, w.EntityCount(), len(lvl.Shapes))
	return nil
}

// ResetWorld drops every entity and world unique, then loads the world again
func ResetWorld(w *engine.World) error {
	w.Clear()
	engine.ClearUniques(w, persistent...)
	return LoadWorld(w)
}

// leaderOf returns the first live leader, the world has at most one
func leaderOf(w *engine.World) (engine.Entity, bool) {
	for _, e := range w.Query().With(engine.ViewOf[*animation.Jean](w)).Execute() {
		return e, true
	}
	return engine.NoEntity, false
}
