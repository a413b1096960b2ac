package component

import (
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// Sprite selects one FrameHeight-tall row of a vertical strip sheet.
// Only animation systems write FrameIndex.
type Sprite struct {
	Image       *render.Image
	FrameHeight int
	FrameIndex  int
}

// Size returns the frame size in pixels
func (s Sprite) Size() vmath.Vec2 {
	return vmath.Vec2{X: float32(s.Image.Width()), Y: float32(s.FrameHeight)}
}

// FrameOrigin returns the top-left source pixel of the current frame
func (s Sprite) FrameOrigin() vmath.Vec2 {
	return vmath.Vec2{Y: float32(s.FrameIndex * s.FrameHeight)}
}

// Frames returns how many rows the sheet holds
func (s Sprite) Frames() int {
	if s.FrameHeight <= 0 {
		return 0
	}
	return s.Image.Height() / s.FrameHeight
}

// Tilemap is one pre-composited layer with its scroll multiplier
type Tilemap struct {
	Image    *render.Image
	Parallax vmath.Vec2
	// Order keeps layers in authoring order, lower draws first
	Order int
}

// Framebuffer is the single render target written by the draw workload
type Framebuffer struct {
	Image *render.Image
}

// Debug toggles developer overlays
type Debug struct {
	Enabled bool
}
