package renderers

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/render"
)

// SpriteRenderer draws sprites back to front: larger Z is further up the screen and drawn first
type SpriteRenderer struct{}

func (SpriteRenderer) Name() string { return "draw_sprite" }

func (SpriteRenderer) Access() []engine.Access {
	return []engine.Access{
		engine.WritesUnique[component.Framebuffer](),
		engine.ReadsUnique[component.Viewport](),
		engine.ReadsUnique[component.Outro](),
		engine.Reads[component.Position](),
		engine.Reads[component.Sprite](),
	}
}

type drawItem struct {
	pos    component.Position
	sprite component.Sprite
}

func (SpriteRenderer) Run(w *engine.World) {
	fb, ok := engine.UniqueMut[component.Framebuffer](w)
	if !ok || fb.Image == nil {
		return
	}
	vp, _ := engine.Unique[component.Viewport](w)
	fade := fadeFactor(w)

	positions := engine.ViewOf[component.Position](w)
	sprites := engine.ViewOf[component.Sprite](w)

	entities := w.Query().With(positions).With(sprites).Execute()
	items := make([]drawItem, 0, len(entities))
	for _, e := range entities {
		pos, _ := positions.Get(e)
		sprite, _ := sprites.Get(e)
		if sprite.Image == nil {
			continue
		}
		items = append(items, drawItem{pos: pos, sprite: sprite})
	}
	sortByDepth(items)

	for _, it := range items {
		size := it.sprite.Size()
		dst := vp.WorldToScreen(it.pos, size.X, size.Y)
		render.Blit(fb.Image, dst, it.sprite.Image, it.sprite.FrameOrigin(), size, fade)
	}
}

// sortByDepth orders items by Z descending, ties keep query order
func sortByDepth(items []drawItem) {
	slices.SortStableFunc(items, func(a, b drawItem) int {
		return cmp.Compare(b.pos.Vec.Z, a.pos.Vec.Z)
	})
}
