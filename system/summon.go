package system

import (
	"log"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/input"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/vmath"
)

// SummonFrogSystem spends a power charge on the use edge and places a frog near the leader
type SummonFrogSystem struct{}

func (SummonFrogSystem) Name() string { return "summon_frog" }

func (SummonFrogSystem) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[WorldSource](),
		engine.ReadsUnique[component.UpdateTime](),
		engine.ReadsUnique[component.Collision](),
		engine.WritesUnique[input.Controls](),
		engine.WritesUnique[component.FrogPower](),
		engine.WritesUnique[component.Random](),
		engine.Reads[*animation.Jean](),
		engine.Writes[component.Position](),
		engine.Writes[component.Velocity](),
		engine.Writes[component.Follow](),
		engine.Writes[component.Sprite](),
		engine.Writes[*animation.Frog](),
	}
}

func (SummonFrogSystem) Run(w *engine.World) {
	controls, ok := engine.UniqueMut[input.Controls](w)
	if !ok || controls.Power() != input.PowerUse {
		return
	}
	power, ok := engine.UniqueMut[component.FrogPower](w)
	if !ok {
		return
	}
	leader, ok := leaderOf(w)
	if !ok {
		return
	}
	leaderPos, ok := engine.ViewMutOf[component.Position](w).Value(leader)
	if !ok {
		return
	}

	now := engine.MustUnique[component.UpdateTime](w).Now()
	if !power.UsePower(now) {
		return
	}

	rng := engine.MustUnique[component.Random](w).Rand
	collision, _ := engine.Unique[component.Collision](w)
	src := engine.MustUnique[WorldSource](w)

	pos := SummonOffset(leaderPos.Vec, collision, rng)
	frog := SpawnFrog(w, src.Sheets, pos, leader, now)
	log.Printf("summoned frog %s at %.1f,%.1f", frog, pos.X, pos.Z)
}

// SummonOffset samples points around center until one clears every collision shape.
// Angle and radius are redrawn on every attempt.
func SummonOffset(center vmath.Vec3, collision component.Collision, rng *vmath.FastRand) vmath.Vec3 {
	for {
		angle := rng.Float32Unit() * vmath.Tau
		radius := rng.Float32Unit() * parameter.SummonRadius
		p := center.Add(vmath.RotateXZ(vmath.UnitX.Scale(radius), angle))
		if !collision.Intersects(p, parameter.EntityRadius) {
			return p
		}
	}
}
