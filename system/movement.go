package system

import (
	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/input"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// JeanVelocitySystem turns the walk input into the leader's velocity and walk clip
type JeanVelocitySystem struct{}

func (JeanVelocitySystem) Name() string { return "jean_velocity" }

func (JeanVelocitySystem) Access() []engine.Access {
	return []engine.Access{
		engine.WritesUnique[input.Controls](),
		engine.ReadsUnique[component.UpdateTime](),
		engine.Writes[component.Position](),
		engine.Writes[component.Velocity](),
		engine.Writes[*animation.Jean](),
	}
}

func (JeanVelocitySystem) Run(w *engine.World) {
	controls, ok := engine.UniqueMut[input.Controls](w)
	if !ok {
		return
	}
	ut := engine.MustUnique[component.UpdateTime](w)
	now, dt := ut.Now(), ut.Seconds()

	walk := controls.Walk()
	// Snap to whole pixels as a diagonal starts so X and Z cross pixel edges together
	snap := controls.BeginningDiagonal()

	positions := engine.ViewMutOf[component.Position](w)
	velocities := engine.ViewMutOf[component.Velocity](w)
	jeans := engine.ViewMutOf[*animation.Jean](w)

	w.Query().With(positions).With(velocities).With(jeans).Each(func(e engine.Entity) {
		jean, _ := jeans.Value(e)
		vel := velocities.Get(e)

		octant, moving := walk.Octant()
		if !moving {
			vel.Vec = vmath.Vec3{}
			jean.ToIdle(now)
			return
		}

		if snap {
			pos := positions.Get(e)
			pos.Vec = pos.Vec.Floor()
		}

		angle := float32(octant) * vmath.Tau / 8
		vel.Vec = vmath.RotateXZ(vmath.UnitX, angle).Scale(parameter.JeanSpeed * dt)

		// Only left and right clips exist: vertical input keeps the facing, diagonals take the horizontal half
		facing := jean.Facing()
		switch {
		case walk.Has(input.DirLeft):
			facing = animation.Left
		case walk.Has(input.DirRight):
			facing = animation.Right
		}
		jean.ToWalking(facing, now)
	})
}

// FrogVelocitySystem runs the frog AI: hunt nearby blobs, otherwise hop back toward the leader
type FrogVelocitySystem struct{}

func (FrogVelocitySystem) Name() string { return "frog_velocity" }

func (FrogVelocitySystem) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[component.UpdateTime](),
		engine.ReadsUnique[component.Audio](),
		engine.WritesUnique[component.Random](),
		engine.WritesUnique[component.DeathQueue](),
		engine.WritesUnique[component.JeanStats](),
		engine.WritesUnique[component.FrogPower](),
		engine.Reads[component.Position](),
		engine.Writes[component.Velocity](),
		engine.Writes[component.Follow](),
		engine.Writes[*animation.Frog](),
		engine.Reads[*animation.Blob](),
	}
}

type blobSighting struct {
	entity engine.Entity
	pos    vmath.Vec3
	distSq float32
}

func (FrogVelocitySystem) Run(w *engine.World) {
	ut := engine.MustUnique[component.UpdateTime](w)
	now, dt := ut.Now(), ut.Seconds()
	rng := engine.MustUnique[component.Random](w).Rand
	audio, _ := engine.Unique[component.Audio](w)
	deaths := engine.MustUniqueMut[component.DeathQueue](w)
	stats, hasStats := engine.UniqueMut[component.JeanStats](w)
	power, hasPower := engine.UniqueMut[component.FrogPower](w)

	positions := engine.ViewOf[component.Position](w)
	velocities := engine.ViewMutOf[component.Velocity](w)
	follows := engine.ViewMutOf[component.Follow](w)
	frogs := engine.ViewMutOf[*animation.Frog](w)
	blobs := engine.ViewOf[*animation.Blob](w)

	blobEntities := w.Query().With(positions).With(blobs).Execute()

	w.Query().With(positions).With(velocities).With(follows).With(frogs).Each(func(e engine.Entity) {
		if deaths.Queued(e) {
			return
		}
		pos, _ := positions.Get(e)
		follow := follows.Get(e)
		frog, _ := frogs.Value(e)
		vel := velocities.Get(e)

		leaderPos, ok := positions.Get(follow.Target)
		if !ok {
			// Leader gone: keep the last decision
			return
		}

		nearest, found := nearestBlob(pos.Vec, blobEntities, positions, deaths)
		if found && nearest.distSq <= parameter.ContactDistanceSq {
			deaths.Queue(e)
			deaths.Queue(nearest.entity)
			if hasStats {
				stats.IncXP()
			}
			if hasPower {
				power.IncXP()
			}
			vel.Vec = vmath.Vec3{}
			return
		}

		if frog.Idle() {
			if dir, hop := frogDecision(pos.Vec, leaderPos.Vec, nearest, found, rng); hop {
				follow.Direction = dir
				frog.Hop(animation.FacingFromX(dir.X), now)
				audio.Play(core.SoundJump)
			}
		}

		if frog.Airborne() {
			vel.Vec = follow.Direction.Scale(parameter.FrogSpeed * dt)
		} else {
			vel.Vec = vmath.Vec3{}
		}
	})
}

// nearestBlob finds the closest blob not already claimed this tick
func nearestBlob(from vmath.Vec3, blobs []engine.Entity, positions engine.View[component.Position], deaths *component.DeathQueue) (blobSighting, bool) {
	var best blobSighting
	found := false
	for _, b := range blobs {
		if deaths.Queued(b) {
			continue
		}
		p, ok := positions.Get(b)
		if !ok {
			continue
		}
		d := p.Vec.Sub(from).MagSq()
		if !found || d < best.distSq {
			best = blobSighting{entity: b, pos: p.Vec, distSq: d}
			found = true
		}
	}
	return best, found
}

// frogDecision picks the next hop direction of an idle frog.
// The leader threshold jitter is drawn on every decision so the stream advances the same way each tick.
func frogDecision(frog, leader vmath.Vec3, blob blobSighting, sawBlob bool, rng *vmath.FastRand) (vmath.Vec3, bool) {
	threshold := parameter.FrogThreshold - rng.Float32Unit()*parameter.FrogThresholdJitter

	if sawBlob && blob.distSq < parameter.FrogShadowDetectionSq {
		dir := blob.pos.Sub(frog)
		dir.Y = 0
		return vmath.RotateXZ(dir.Normalized(), hopJitter(rng)), true
	}

	toLeader := leader.Sub(frog)
	toLeader.Y = 0
	if toLeader.MagSq() > threshold*threshold {
		return vmath.RotateXZ(toLeader.Normalized(), hopJitter(rng)), true
	}
	return vmath.Vec3{}, false
}

// hopJitter is a random turn of at most FrogHopJitterTurns either way
func hopJitter(rng *vmath.FastRand) float32 {
	return rng.Float32NDC() * vmath.Tau * parameter.FrogHopJitterTurns
}

// BlobVelocitySystem starts random bounces and keeps idle blobs still
type BlobVelocitySystem struct{}

func (BlobVelocitySystem) Name() string { return "blob_velocity" }

func (BlobVelocitySystem) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[component.UpdateTime](),
		engine.ReadsUnique[component.Audio](),
		engine.WritesUnique[component.Random](),
		engine.Writes[component.Velocity](),
		engine.Writes[component.Wander](),
		engine.Writes[*animation.Blob](),
	}
}

func (BlobVelocitySystem) Run(w *engine.World) {
	ut := engine.MustUnique[component.UpdateTime](w)
	now, dt := ut.Now(), ut.Seconds()
	rng := engine.MustUnique[component.Random](w).Rand
	audio, _ := engine.Unique[component.Audio](w)

	velocities := engine.ViewMutOf[component.Velocity](w)
	wanders := engine.ViewMutOf[component.Wander](w)
	blobs := engine.ViewMutOf[*animation.Blob](w)

	w.Query().With(velocities).With(wanders).With(blobs).Each(func(e engine.Entity) {
		vel := velocities.Get(e)
		wander := wanders.Get(e)
		blob, _ := blobs.Value(e)

		if blob.Idle() {
			vel.Vec = vmath.Vec3{}
		}

		if vel.Vec.MagSq() < parameter.BlobRestVelocitySq && blob.Idle() {
			if !rng.Chance(parameter.BlobBounceChance) {
				return
			}
			angle := rng.Float32Unit() * vmath.Tau
			wander.Direction = vmath.RotateXZ(vmath.UnitX, angle)
			blob.Bounce(animation.FacingFromX(wander.Direction.X), now)
			audio.Play(core.SoundSplat)
		}

		if !blob.Idle() {
			vel.Vec = wander.Direction.Scale(parameter.BlobSpeed * dt)
		}
	})
}

// PositionSystem commits velocities, a step that would enter a collision shape is dropped entirely
type PositionSystem struct{}

func (PositionSystem) Name() string { return "positions" }

func (PositionSystem) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[component.Collision](),
		engine.Writes[component.Position](),
		engine.Writes[component.Velocity](),
	}
}

func (PositionSystem) Run(w *engine.World) {
	collision, _ := engine.Unique[component.Collision](w)

	positions := engine.ViewMutOf[component.Position](w)
	velocities := engine.ViewMutOf[component.Velocity](w)

	w.Query().With(positions).With(velocities).Each(func(e engine.Entity) {
		pos := positions.Get(e)
		vel := velocities.Get(e)
		if pos.Space != component.SpaceWorld {
			pos.Vec = pos.Vec.Add(vel.Vec)
			return
		}

		next := pos.Vec.Add(vel.Vec)
		if collision.Intersects(next, parameter.EntityRadius) {
			vel.Vec = vmath.Vec3{}
			return
		}
		pos.Vec = next
	})
}
