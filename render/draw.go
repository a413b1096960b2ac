package render

import (
	"math"

	"github.com/lixenwraith/sombervale/vmath"
)

// Segment is a line from A to B in pixel coordinates relative to the draw origin
type Segment struct {
	A, B vmath.Vec2
}

// FillRect paints a solid rectangle, clipped to dst
func FillRect(dst *Image, pos vmath.Vec2, size vmath.Vec2, c RGBA, factor float32) {
	ColorMultiply(&c, factor)

	x0 := int(math.Round(float64(pos.X)))
	y0 := int(math.Round(float64(pos.Y)))
	x1 := x0 + int(math.Round(float64(size.X)))
	y1 := y0 + int(math.Round(float64(size.Y)))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, dst.width), min(y1, dst.height)

	for y := y0; y < y1; y++ {
		o := (y*dst.width + x0) * 4
		for x := x0; x < x1; x++ {
			copy(dst.pix[o:o+4], c[:])
			o += 4
		}
	}
}

// Lines draws each segment offset by origin with inclusive endpoints
func Lines(dst *Image, origin vmath.Vec2, c RGBA, segments []Segment, factor float32) {
	ColorMultiply(&c, factor)

	for _, s := range segments {
		a := s.A.Add(origin).Round()
		b := s.B.Add(origin).Round()
		ddx, ddy := b.X-a.X, b.Y-a.Y
		steps := int(max(abs32(ddx), abs32(ddy)))
		if steps == 0 {
			dst.Set(int(a.X), int(a.Y), c)
			continue
		}
		sx, sy := ddx/float32(steps), ddy/float32(steps)
		for i := 0; i <= steps; i++ {
			x := a.X + sx*float32(i)
			y := a.Y + sy*float32(i)
			dst.Set(int(math.Round(float64(x))), int(math.Round(float64(y))), c)
		}
	}
}

// RectOutline returns the four edges of a w x h box starting at the origin
func RectOutline(w, h float32) []Segment {
	return []Segment{
		{vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: w - 1, Y: 0}},
		{vmath.Vec2{X: w - 1, Y: 0}, vmath.Vec2{X: w - 1, Y: h - 1}},
		{vmath.Vec2{X: w - 1, Y: h - 1}, vmath.Vec2{X: 0, Y: h - 1}},
		{vmath.Vec2{X: 0, Y: h - 1}, vmath.Vec2{X: 0, Y: 0}},
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
