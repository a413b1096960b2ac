package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/sombervale/vmath"
)

// Blit copies a size-sized region of src starting at srcPos into dst at dstPos.
// Source pixels are copied only when alpha is Opaque; RGB is scaled by factor.
// Positions are rounded to whole pixels. Negative offsets shrink the copied region and
// anything that would land outside either image is skipped.
//
// Panics if size exceeds the bounds of src or dst
func Blit(dst *Image, dstPos vmath.Vec2, src *Image, srcPos vmath.Vec2, size vmath.Vec2, factor float32) {
	w := int(math.Round(float64(size.X)))
	h := int(math.Round(float64(size.Y)))
	if w > src.width || h > src.height || w > dst.width || h > dst.height {
		panic(fmt.Sprintf("render: blit size %dx%d exceeds src %dx%d or dst %dx%d",
			w, h, src.width, src.height, dst.width, dst.height))
	}

	dx := int(math.Round(float64(dstPos.X)))
	dy := int(math.Round(float64(dstPos.Y)))
	sx := int(math.Round(float64(srcPos.X)))
	sy := int(math.Round(float64(srcPos.Y)))

	// Negative offsets on either side consume part of the region
	if sx < 0 {
		w += sx
		dx -= sx
		sx = 0
	}
	if sy < 0 {
		h += sy
		dy -= sy
		sy = 0
	}
	if dx < 0 {
		w += dx
		sx -= dx
		dx = 0
	}
	if dy < 0 {
		h += dy
		sy -= dy
		dy = 0
	}

	// Clip against the far edges
	w = min(w, src.width-sx, dst.width-dx)
	h = min(h, src.height-sy, dst.height-dy)
	if w <= 0 || h <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		so := ((sy+y)*src.width + sx) * 4
		do := ((dy+y)*dst.width + dx) * 4
		for x := 0; x < w; x++ {
			if src.pix[so+3] == Opaque {
				if factor == 1 {
					copy(dst.pix[do:do+4], src.pix[so:so+4])
				} else {
					dst.pix[do] = scaleChannel(src.pix[so], factor)
					dst.pix[do+1] = scaleChannel(src.pix[so+1], factor)
					dst.pix[do+2] = scaleChannel(src.pix[so+2], factor)
					dst.pix[do+3] = Opaque
				}
			}
			so += 4
			do += 4
		}
	}
}
