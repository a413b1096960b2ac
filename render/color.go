package render

// RGBA is a straight 8-bit color, alpha 0xff is the only opaque value the compositor honors
type RGBA [4]byte

// Opaque is the alpha sentinel for solid pixels
const Opaque = 0xff

// Hex builds an opaque color from 0xRRGGBB
func Hex(rgb uint32) RGBA {
	return RGBA{byte(rgb >> 16), byte(rgb >> 8), byte(rgb), Opaque}
}

// HUD palette
var (
	ColorGreen  = Hex(0x38b764)
	ColorPurple = Hex(0x5d275d)
	ColorWhite  = Hex(0xf4f4f4)
	ColorGray   = Hex(0x94b0c2)
	ColorRed    = Hex(0xb13e53)
)

// ColorMultiply scales RGB by factor with saturation, alpha is untouched
func ColorMultiply(c *RGBA, factor float32) {
	if factor == 1 {
		return
	}
	for i := 0; i < 3; i++ {
		c[i] = scaleChannel(c[i], factor)
	}
}

func scaleChannel(v byte, factor float32) byte {
	f := float32(v) * factor
	if f >= 255 {
		return 255
	}
	if f <= 0 {
		return 0
	}
	return byte(f)
}
