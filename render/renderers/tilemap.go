package renderers

import (
	"slices"

	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// TilemapRenderer clears the framebuffer and draws every layer scrolled by its parallax factor
type TilemapRenderer struct{}

func (TilemapRenderer) Name() string { return "draw_tilemap" }

func (TilemapRenderer) Access() []engine.Access {
	return []engine.Access{
		engine.WritesUnique[component.Framebuffer](),
		engine.ReadsUnique[component.Viewport](),
		engine.ReadsUnique[component.Outro](),
		engine.Reads[component.Tilemap](),
	}
}

func (TilemapRenderer) Run(w *engine.World) {
	fb, ok := engine.UniqueMut[component.Framebuffer](w)
	if !ok || fb.Image == nil {
		return
	}
	fb.Image.Clear()

	vp, _ := engine.Unique[component.Viewport](w)
	fade := fadeFactor(w)

	tilemaps := engine.ViewOf[component.Tilemap](w)
	layers := make([]component.Tilemap, 0, tilemaps.Len())
	for _, e := range w.Query().With(tilemaps).Execute() {
		tm, _ := tilemaps.Get(e)
		layers = append(layers, tm)
	}
	slices.SortStableFunc(layers, func(a, b component.Tilemap) int { return a.Order - b.Order })

	for _, tm := range layers {
		scroll := vp.Pos.Mul(tm.Parallax).Floor()
		size := vmath.Vec2{
			X: float32(min(fb.Image.Width(), tm.Image.Width())),
			Y: float32(min(fb.Image.Height(), tm.Image.Height())),
		}
		render.Blit(fb.Image, vmath.Vec2{}, tm.Image, scroll, size, fade)
	}
}

// fadeFactor is the outro brightness, 1 when no outro runs
func fadeFactor(w *engine.World) float32 {
	if outro, ok := engine.Unique[component.Outro](w); ok {
		return outro.Fade
	}
	return 1
}
