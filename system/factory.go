package system

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/asset"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/level"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// Spawn point names understood by the entity factory
const (
	SpawnJean = "Jean"
	SpawnBlob = "Blob"
	SpawnFire = "Fire"
)

// ErrUnknownSpawn is an authoring error: the level names an entity type the factory cannot build
var ErrUnknownSpawn = errors.New("unknown spawn point")

// SpawnPoint builds the initial component bundle for one level spawn point
func SpawnPoint(w *engine.World, sheets *asset.Sheets, sp level.SpawnPoint, now time.Time, rng *vmath.FastRand) (engine.Entity, error) {
	pos := component.Position{Vec: sp.Pos, Space: component.SpaceWorld}

	switch sp.Name {
	case SpawnJean:
		jean := animation.NewJean(now)
		return w.Spawn(
			engine.With(pos),
			engine.With(component.Velocity{}),
			engine.With(sprite(sheets.Jean, asset.JeanFrameHeight, jean.FrameIndex())),
			engine.With(jean),
		), nil

	case SpawnBlob:
		facing := animation.Facing(rng.Intn(2))
		if dir, ok := sp.String("direction"); ok {
			switch dir {
			case "left":
				facing = animation.Left
			case "right":
				facing = animation.Right
			default:
				return engine.NoEntity, errors.Wrapf(ErrUnknownSpawn, "blob direction %q", dir)
			}
		}
		blob := animation.NewBlob(now, facing)
		return w.Spawn(
			engine.With(pos),
			engine.With(component.Velocity{}),
			engine.With(component.Wander{}),
			engine.With(sprite(sheets.Blob, asset.BlobFrameHeight, blob.FrameIndex())),
			engine.With(blob),
		), nil

	case SpawnFire:
		fire := animation.NewFire(now, rng)
		return w.Spawn(
			engine.With(pos),
			engine.With(sprite(sheets.Fire, asset.FireFrameHeight, fire.FrameIndex())),
			engine.With(fire),
		), nil
	}

	return engine.NoEntity, errors.Wrapf(ErrUnknownSpawn, "%q at %v", sp.Name, sp.Pos)
}

// SpawnFrog creates a frog bound to leader
func SpawnFrog(w *engine.World, sheets *asset.Sheets, pos vmath.Vec3, leader engine.Entity, now time.Time) engine.Entity {
	frog := animation.NewFrog(now)
	return w.Spawn(
		engine.With(component.Position{Vec: pos, Space: component.SpaceWorld}),
		engine.With(component.Velocity{}),
		engine.With(component.Follow{Target: leader}),
		engine.With(sprite(sheets.Frog, asset.FrogFrameHeight, frog.FrameIndex())),
		engine.With(frog),
	)
}

func sprite(img *render.Image, frameHeight, index int) component.Sprite {
	return component.Sprite{Image: img, FrameHeight: frameHeight, FrameIndex: index}
}

func newFramebuffer() *render.Image {
	return render.NewImage(parameter.ScreenWidth, parameter.ScreenHeight)
}
