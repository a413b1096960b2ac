package system

import (
	"log"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/parameter"
)

// JeanShadowCollisionSystem ends the run when a blob touches the leader: both die and the outro starts
type JeanShadowCollisionSystem struct{}

func (JeanShadowCollisionSystem) Name() string { return "jean_shadow_collision" }

// Access is all storages because the system adds the Outro unique
func (JeanShadowCollisionSystem) Access() []engine.Access {
	return []engine.Access{engine.AllStorages()}
}

func (JeanShadowCollisionSystem) Run(w *engine.World) {
	deaths := engine.MustUniqueMut[component.DeathQueue](w)
	positions := engine.ViewOf[component.Position](w)
	jeans := engine.ViewOf[*animation.Jean](w)
	blobs := engine.ViewOf[*animation.Blob](w)

	blobEntities := w.Query().With(positions).With(blobs).Execute()

	for _, jean := range w.Query().With(positions).With(jeans).Execute() {
		if deaths.Queued(jean) {
			continue
		}
		jp, _ := positions.Get(jean)
		for _, blob := range blobEntities {
			if deaths.Queued(blob) {
				continue
			}
			bp, _ := positions.Get(blob)
			if bp.Vec.Sub(jp.Vec).MagSq() >= parameter.ContactDistanceSq {
				continue
			}

			deaths.Queue(jean)
			deaths.Queue(blob)
			if !engine.HasUnique[component.Outro](w) {
				now := engine.MustUnique[component.UpdateTime](w).Now()
				engine.AddUnique(w, component.NewOutro(now))
				log.Printf("leader %s caught by %s, outro started", jean, blob)
			}
			if audio, ok := engine.Unique[component.Audio](w); ok {
				audio.Play(core.SoundDeath)
			}
			break
		}
	}
}
