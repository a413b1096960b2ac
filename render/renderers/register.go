package renderers

import "github.com/lixenwraith/sombervale/engine"

// DrawWorkload is the name of the render pipeline
const DrawWorkload = "draw"

// Register adds the draw workload: tilemap layers, then sprites, then the HUD on top
func Register(w *engine.World) error {
	return engine.NewWorkload(DrawWorkload).With(
		TilemapRenderer{},
		SpriteRenderer{},
		HudRenderer{},
	).Add(w)
}
