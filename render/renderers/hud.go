package renderers

import (
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/parameter"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// HudRenderer draws the stat meters and, in debug mode, the viewport follow box
type HudRenderer struct{}

func (HudRenderer) Name() string { return "draw_hud" }

func (HudRenderer) Access() []engine.Access {
	return []engine.Access{
		engine.WritesUnique[component.Framebuffer](),
		engine.ReadsUnique[component.JeanStats](),
		engine.ReadsUnique[component.FrogPower](),
		engine.ReadsUnique[component.Debug](),
		engine.ReadsUnique[component.Outro](),
	}
}

func (HudRenderer) Run(w *engine.World) {
	fb, ok := engine.UniqueMut[component.Framebuffer](w)
	if !ok || fb.Image == nil {
		return
	}
	fade := fadeFactor(w)

	if stats, ok := engine.Unique[component.JeanStats](w); ok {
		DrawMeter(fb.Image, vmath.Vec2{X: parameter.HPMeterX, Y: parameter.HPMeterY}, stats.HP, stats.MaxHP, render.ColorGreen, fade)
		DrawMeter(fb.Image, vmath.Vec2{X: parameter.XPMeterX, Y: parameter.XPMeterY}, stats.XP, stats.MaxXP, render.ColorPurple, fade)
	}
	if power, ok := engine.Unique[component.FrogPower](w); ok {
		DrawMeter(fb.Image, vmath.Vec2{X: parameter.PPMeterX, Y: parameter.PPMeterY}, power.PP, power.MaxPP, render.ColorGreen, fade)
		DrawMeter(fb.Image, vmath.Vec2{X: parameter.PowerXPMeterX, Y: parameter.PowerXPMeterY}, power.XP, power.MaxXP, render.ColorPurple, fade)
	}

	if debug, ok := engine.Unique[component.Debug](w); ok && debug.Enabled {
		origin := vmath.Vec2{X: parameter.ViewportBoundsMinX, Y: parameter.ViewportBoundsMinY}
		box := render.RectOutline(
			parameter.ViewportBoundsMaxX-parameter.ViewportBoundsMinX,
			parameter.ViewportBoundsMaxY-parameter.ViewportBoundsMinY,
		)
		render.Lines(fb.Image, origin, render.ColorWhite, box, fade)
	}
}

// meterBorder frames the track with rounded corners, relative to the meter origin
var meterBorder = []render.Segment{
	{A: vmath.Vec2{X: 1, Y: 1}, B: vmath.Vec2{X: parameter.MeterWidth + 2, Y: 1}},
	{A: vmath.Vec2{X: parameter.MeterWidth + 3, Y: 2}, B: vmath.Vec2{X: parameter.MeterWidth + 3, Y: parameter.MeterHeight + 3}},
	{A: vmath.Vec2{X: 1, Y: parameter.MeterHeight + 4}, B: vmath.Vec2{X: parameter.MeterWidth + 2, Y: parameter.MeterHeight + 4}},
	{A: vmath.Vec2{X: 0, Y: 2}, B: vmath.Vec2{X: 0, Y: parameter.MeterHeight + 3}},
}

// DrawMeter paints a white frame around a track filled with c for value/max and gray for the rest
func DrawMeter(dst *render.Image, pos vmath.Vec2, value, maxValue int, c render.RGBA, factor float32) {
	render.Lines(dst, pos, render.ColorWhite, meterBorder, factor)

	ratio := float32(0)
	if maxValue > 0 {
		ratio = float32(min(max(value, 0), maxValue)) / float32(maxValue)
	}
	track := pos.Add(vmath.Vec2{X: 2, Y: 3})
	active := vmath.Vec2{X: parameter.MeterWidth * ratio, Y: parameter.MeterHeight}
	render.FillRect(dst, track, active, c, factor)

	inactive := vmath.Vec2{X: parameter.MeterWidth - active.X, Y: parameter.MeterHeight}
	render.FillRect(dst, track.Add(vmath.Vec2{X: active.X}), inactive, render.ColorGray, factor)
}
