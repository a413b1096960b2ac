package parameter

// Framebuffer size in pixels
const (
	ScreenWidth  = 160
	ScreenHeight = 128
)

// Viewport follow inset, the leader sprite is kept inside [ViewportBoundsMin, ViewportBoundsMax]
const (
	ViewportBoundsMinX = 64
	ViewportBoundsMinY = 48
	ViewportBoundsMaxX = ScreenWidth - ViewportBoundsMinX
	ViewportBoundsMaxY = ScreenHeight - ViewportBoundsMinY
)
