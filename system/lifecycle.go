package system

import (
	"log"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
)

// HudSystem refills frog power while there is room for another frog
type HudSystem struct{}

func (HudSystem) Name() string { return "hud" }

func (HudSystem) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[component.UpdateTime](),
		engine.WritesUnique[component.FrogPower](),
		engine.Reads[*animation.Frog](),
	}
}

func (HudSystem) Run(w *engine.World) {
	power, ok := engine.UniqueMut[component.FrogPower](w)
	if !ok {
		return
	}
	now := engine.MustUnique[component.UpdateTime](w).Now()
	power.Update(now, engine.ViewOf[*animation.Frog](w).Len())
}

// OutroSystem fades the world after the leader died and rebuilds it when the fade ends
type OutroSystem struct{}

func (OutroSystem) Name() string { return "outro" }

func (OutroSystem) Access() []engine.Access {
	return []engine.Access{engine.AllStorages()}
}

func (OutroSystem) Run(w *engine.World) {
	outro, ok := engine.UniqueMut[component.Outro](w)
	if !ok {
		return
	}
	now := engine.MustUnique[component.UpdateTime](w).Now()
	if !outro.Update(now) {
		return
	}

	// The level loaded once already, failing now means the world source was corrupted
	if err := ResetWorld(w); err != nil {
		panic(err)
	}
	log.Printf("world rebuilt after outro")
}

// CleanupSystem applies the deletions queued during the tick
type CleanupSystem struct{}

func (CleanupSystem) Name() string { return "cleanup" }

func (CleanupSystem) Access() []engine.Access {
	return []engine.Access{engine.AllStorages()}
}

func (CleanupSystem) Run(w *engine.World) {
	deaths, ok := engine.UniqueMut[component.DeathQueue](w)
	if !ok {
		return
	}
	for _, e := range deaths.Drain() {
		w.Delete(e)
	}
}

// TimeSystem closes the tick, it must run last
type TimeSystem struct{}

func (TimeSystem) Name() string { return "time" }

func (TimeSystem) Access() []engine.Access {
	return []engine.Access{engine.WritesUnique[component.UpdateTime]()}
}

func (TimeSystem) Run(w *engine.World) {
	if ut, ok := engine.UniqueMut[component.UpdateTime](w); ok {
		ut.Refresh()
	}
}
