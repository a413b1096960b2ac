package renderers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

func solid(w, h int, c render.RGBA) *render.Image {
	img := render.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newDrawWorld(t *testing.T) (*engine.World, *render.Image) {
	t.Helper()
	w := engine.NewWorld()
	fb := render.NewImage(parameter.ScreenWidth, parameter.ScreenHeight)
	engine.AddUnique(w, component.Framebuffer{Image: fb})
	engine.AddUnique(w, component.Viewport{WorldHeight: 256})
	require.NoError(t, Register(w))
	return w, fb
}

func TestTilemapParallaxScroll(t *testing.T) {
	w, fb := newDrawWorld(t)

	// Left half green, right half purple, 320 wide
	layer := render.NewImage(320, 256)
	for y := 0; y < 256; y++ {
		for x := 0; x < 320; x++ {
			c := render.ColorGreen
			if x >= 160 {
				c = render.ColorPurple
			}
			layer.Set(x, y, c)
		}
	}
	w.Spawn(engine.With(component.Tilemap{Image: layer, Parallax: vmath.Vec2{X: 0.5, Y: 1}}))
	engine.MustUniqueMut[component.Viewport](w).Pos = vmath.Vec2{X: 200, Y: 0}

	require.NoError(t, w.RunWorkload(DrawWorkload))

	// Scroll 100: column 59 shows layer x 159, column 60 shows layer x 160
	assert.Equal(t, render.ColorGreen, fb.At(59, 50))
	assert.Equal(t, render.ColorPurple, fb.At(60, 50))
}

func TestTilemapLayerOrder(t *testing.T) {
	w, fb := newDrawWorld(t)

	top := render.NewImage(160, 128)
	top.Set(5, 5, render.ColorWhite)
	w.Spawn(engine.With(component.Tilemap{Image: top, Parallax: vmath.Vec2{X: 1, Y: 1}, Order: 1}))
	w.Spawn(engine.With(component.Tilemap{Image: solid(160, 128, render.ColorGreen), Parallax: vmath.Vec2{X: 1, Y: 1}, Order: 0}))

	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorWhite, fb.At(5, 5))
	assert.Equal(t, render.ColorGreen, fb.At(6, 5))
}

func TestSpritesDrawBackToFront(t *testing.T) {
	w, fb := newDrawWorld(t)

	// Both sprites cover the same pixels; the lower Z (closer) must win
	far := component.Sprite{Image: solid(16, 16, render.ColorRed), FrameHeight: 16}
	near := component.Sprite{Image: solid(16, 16, render.ColorGreen), FrameHeight: 16}
	w.Spawn(engine.With(component.Position{Vec: vmath.Vec3{X: 40, Z: 100}}), engine.With(near))
	w.Spawn(engine.With(component.Position{Vec: vmath.Vec3{X: 40, Z: 101}}), engine.With(far))

	// near lands at rows 40..55 and far at rows 39..54 once scrolled down by 100
	engine.MustUniqueMut[component.Viewport](w).Pos = vmath.Vec2{X: 0, Y: 100}
	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorGreen, fb.At(35, 45))
	assert.Equal(t, render.ColorRed, fb.At(35, 39), "the row only the far sprite covers")
}

func TestScreenSpaceSpriteIgnoresViewport(t *testing.T) {
	w, fb := newDrawWorld(t)
	engine.MustUniqueMut[component.Viewport](w).Pos = vmath.Vec2{X: 500, Y: 500}

	w.Spawn(
		engine.With(component.Position{Vec: vmath.Vec3{X: 10, Y: 20}, Space: component.SpaceScreen}),
		engine.With(component.Sprite{Image: solid(4, 4, render.ColorWhite), FrameHeight: 4}),
	)
	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorWhite, fb.At(10, 20))
	assert.Equal(t, render.RGBA{}, fb.At(14, 20))
}

func TestSpriteFrameSelection(t *testing.T) {
	w, fb := newDrawWorld(t)

	sheet := render.NewImage(2, 4)
	for x := 0; x < 2; x++ {
		sheet.Set(x, 0, render.ColorRed)
		sheet.Set(x, 1, render.ColorRed)
		sheet.Set(x, 2, render.ColorGreen)
		sheet.Set(x, 3, render.ColorGreen)
	}
	w.Spawn(
		engine.With(component.Position{Vec: vmath.Vec3{X: 1, Y: 1}, Space: component.SpaceScreen}),
		engine.With(component.Sprite{Image: sheet, FrameHeight: 2, FrameIndex: 1}),
	)
	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorGreen, fb.At(1, 1))
	assert.Equal(t, render.ColorGreen, fb.At(2, 2))
}

func TestOutroDimsEverything(t *testing.T) {
	w, fb := newDrawWorld(t)
	w.Spawn(engine.With(component.Tilemap{Image: solid(160, 128, render.Hex(0x808080)), Parallax: vmath.Vec2{X: 1, Y: 1}}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	outro := component.NewOutro(start)
	outro.Update(start.Add(time.Second))
	engine.AddUnique(w, outro)

	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.RGBA{0x40, 0x40, 0x40, render.Opaque}, fb.At(100, 100))
}

func TestHudMeters(t *testing.T) {
	w, fb := newDrawWorld(t)
	stats := component.NewJeanStats()
	stats.XP = 5
	engine.AddUnique(w, stats)

	require.NoError(t, w.RunWorkload(DrawWorkload))

	// Track starts two right and three down of the meter origin
	hpX, hpY := parameter.HPMeterX+2, parameter.HPMeterY+3
	xpX, xpY := parameter.XPMeterX+2, parameter.XPMeterY+3

	// Full HP meter
	assert.Equal(t, render.ColorGreen, fb.At(hpX, hpY))
	assert.Equal(t, render.ColorGreen, fb.At(hpX+parameter.MeterWidth-1, hpY+1))
	// Half XP meter, gray inactive side
	assert.Equal(t, render.ColorPurple, fb.At(xpX+9, xpY))
	assert.Equal(t, render.ColorGray, fb.At(xpX+10, xpY))
	assert.Equal(t, render.ColorGray, fb.At(xpX+parameter.MeterWidth-1, xpY+1))
	// White frame with open corners
	assert.Equal(t, render.ColorWhite, fb.At(parameter.HPMeterX+1, parameter.HPMeterY+1))
	assert.Equal(t, render.ColorWhite, fb.At(parameter.HPMeterX, parameter.HPMeterY+2))
	assert.Equal(t, render.ColorWhite, fb.At(parameter.HPMeterX+parameter.MeterWidth+3, parameter.HPMeterY+5))
	assert.Equal(t, render.ColorWhite, fb.At(parameter.HPMeterX+parameter.MeterWidth+2, parameter.HPMeterY+6))
	assert.Equal(t, render.RGBA{}, fb.At(parameter.HPMeterX, parameter.HPMeterY+1))
	// No frog power unique, no meter
	assert.Equal(t, render.RGBA{}, fb.At(parameter.PPMeterX+2, parameter.PPMeterY+3))
	assert.Equal(t, render.RGBA{}, fb.At(parameter.PPMeterX+1, parameter.PPMeterY+1))
}

func TestHudFrogPowerMeters(t *testing.T) {
	w, fb := newDrawWorld(t)
	power := component.NewFrogPower(time.Time{})
	power.PP = 0
	power.XP = power.MaxXP
	engine.AddUnique(w, power)

	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorGray, fb.At(parameter.PPMeterX+2, parameter.PPMeterY+3))
	assert.Equal(t, render.ColorPurple, fb.At(parameter.PowerXPMeterX+2+parameter.MeterWidth-1, parameter.PowerXPMeterY+3))
}

func TestDebugViewportBox(t *testing.T) {
	w, fb := newDrawWorld(t)
	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.RGBA{}, fb.At(parameter.ViewportBoundsMinX, parameter.ViewportBoundsMinY))

	engine.AddUnique(w, component.Debug{Enabled: true})
	require.NoError(t, w.RunWorkload(DrawWorkload))
	assert.Equal(t, render.ColorWhite, fb.At(parameter.ViewportBoundsMinX, parameter.ViewportBoundsMinY))
	assert.Equal(t, render.ColorWhite, fb.At(parameter.ViewportBoundsMaxX-1, parameter.ViewportBoundsMaxY-1))
	assert.Equal(t, render.RGBA{}, fb.At(80, 64))
}

func TestHudFadesWithOutro(t *testing.T) {
	w, fb := newDrawWorld(t)
	engine.AddUnique(w, component.NewJeanStats())
	engine.AddUnique(w, component.Debug{Enabled: true})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	outro := component.NewOutro(start)
	outro.Update(start.Add(time.Second))
	engine.AddUnique(w, outro)

	require.NoError(t, w.RunWorkload(DrawWorkload))

	dim := func(c render.RGBA) render.RGBA {
		render.ColorMultiply(&c, outro.Fade)
		return c
	}
	assert.Equal(t, dim(render.ColorWhite), fb.At(parameter.ViewportBoundsMinX, parameter.ViewportBoundsMinY))
	assert.Equal(t, dim(render.ColorWhite), fb.At(parameter.HPMeterX+1, parameter.HPMeterY+1))
	assert.Equal(t, dim(render.ColorGreen), fb.At(parameter.HPMeterX+2, parameter.HPMeterY+3))
}

func TestSortByDepthIsStable(t *testing.T) {
	items := []drawItem{
		{pos: component.Position{Vec: vmath.Vec3{Z: 1}}, sprite: component.Sprite{FrameIndex: 0}},
		{pos: component.Position{Vec: vmath.Vec3{Z: 5}}, sprite: component.Sprite{FrameIndex: 1}},
		{pos: component.Position{Vec: vmath.Vec3{Z: 1}}, sprite: component.Sprite{FrameIndex: 2}},
	}
	sortByDepth(items)
	got := []int{items[0].sprite.FrameIndex, items[1].sprite.FrameIndex, items[2].sprite.FrameIndex}
	assert.Equal(t, []int{1, 0, 2}, got)
}
