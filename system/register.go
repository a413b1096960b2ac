package system

import (
	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/engine"
)

// UpdateWorkload is the name of the simulation pipeline
const UpdateWorkload = "update"

// UpdateSystems returns the simulation pipeline in execution order.
// Velocities read this tick's controls before positions integrate them, animation runs after
// the AI picked clips, cleanup follows every system that queues deaths and time closes the tick.
func UpdateSystems() []engine.System {
	return []engine.System{
		SummonFrogSystem{},
		JeanVelocitySystem{},
		FrogVelocitySystem{},
		BlobVelocitySystem{},
		PositionSystem{},
		JeanShadowCollisionSystem{},
		ViewportSystem{},
		AnimationSystem[*animation.Jean]{},
		AnimationSystem[*animation.Frog]{},
		AnimationSystem[*animation.Blob]{},
		AnimationSystem[*animation.Fire]{},
		HudSystem{},
		OutroSystem{},
		CleanupSystem{},
		TimeSystem{},
	}
}

// Register adds the update workload to w
func Register(w *engine.World) error {
	return engine.NewWorkload(UpdateWorkload).With(UpdateSystems()...).Add(w)
}
