package asset

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// Palette for generated art
var Palette = struct {
	Skin, Hair, Cloak, Boots render.RGBA
	FrogBody, FrogBelly      render.RGBA
	BlobBody, BlobShine      render.RGBA
	FlameOuter, FlameInner   render.RGBA
	Eye                      render.RGBA

	Grass, GrassDark, Wall, WallEdge render.RGBA
	Water, WaterLight, Flower, Path  render.RGBA
}{
	Skin:  render.Hex(0xffcd75),
	Hair:  render.Hex(0x5d275d),
	Cloak: render.Hex(0x3b5dc9),
	Boots: render.Hex(0x333c57),

	FrogBody:  render.Hex(0x38b764),
	FrogBelly: render.Hex(0xa7f070),

	BlobBody:  render.Hex(0xb13e53),
	BlobShine: render.Hex(0xef7d57),

	FlameOuter: render.Hex(0xef7d57),
	FlameInner: render.Hex(0xffcd75),

	Eye: render.Hex(0x1a1c2c),

	Grass:      render.Hex(0x257179),
	GrassDark:  render.Hex(0x1f5e66),
	Wall:       render.Hex(0x566c86),
	WallEdge:   render.Hex(0x333c57),
	Water:      render.Hex(0x29366f),
	WaterLight: render.Hex(0x41a6f6),
	Flower:     render.Hex(0xf4f4f4),
	Path:       render.Hex(0x94b0c2),
}

// Tile ids in the generated tileset, matching gid-1
const (
	TileGrass = iota
	TileGrassDark
	TileWall
	TileWater
	TileFlowers
	TilePath
	tileCount
)

func toColor(c render.RGBA) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func fillRect(img *render.Image, x, y, w, h int, c render.RGBA) {
	draw.Draw(img.ToRGBA(), image.Rect(x, y, x+w, y+h), &image.Uniform{C: toColor(c)}, image.Point{}, draw.Src)
}

func fillEllipse(img *render.Image, cx, cy, rx, ry float64, c render.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
}

// mirrorFrame copies frame src onto frame dst flipped horizontally
func mirrorFrame(img *render.Image, frameHeight, src, dst int) {
	w := img.Width()
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < w; x++ {
			img.Set(w-1-x, dst*frameHeight+y, img.At(x, src*frameHeight+y))
		}
	}
}

// frame returns a sub-image view for drawing a single row
type frame struct {
	img *render.Image
	oy  int
}

func (f frame) rect(x, y, w, h int, c render.RGBA) { fillRect(f.img, x, f.oy+y, w, h, c) }
func (f frame) ellipse(cx, cy, rx, ry float64, c render.RGBA) {
	fillEllipse(f.img, cx, float64(f.oy)+cy, rx, ry, c)
}
func (f frame) set(x, y int, c render.RGBA) { f.img.Set(x, f.oy+y, c) }

// CreateJeanSheet draws idle and an eight frame walk cycle facing right, then mirrors them
func CreateJeanSheet() *render.Image {
	const h = JeanFrameHeight
	img := render.NewImage(SheetWidth, h*animation.JeanRows)
	half := animation.JeanRows / 2

	for i := 0; i < half; i++ {
		f := frame{img, i * h}
		swing, bob := 0, 0
		if i > 0 {
			phase := float64(i-1) / 8 * 2 * math.Pi
			swing = int(math.Round(2 * math.Sin(phase)))
			bob = int(math.Round(math.Abs(math.Sin(phase))))
		}
		// legs
		f.rect(6+swing, 24, 2, 6, Palette.Boots)
		f.rect(9-swing, 24, 2, 6, Palette.Boots)
		// cloak and head
		f.rect(4, 13-bob, 8, 12, Palette.Cloak)
		f.ellipse(8, 8-float64(bob), 4, 4.5, Palette.Skin)
		f.rect(4, 3-bob, 8, 3, Palette.Hair)
		f.set(10, 8-bob, Palette.Eye)
	}
	for i := 0; i < half; i++ {
		mirrorFrame(img, h, i, half+i)
	}
	return img
}

// CreateFrogSheet draws the five frame hop facing right: crouch, rise, apex, fall, land
func CreateFrogSheet() *render.Image {
	const h = FrogFrameHeight
	img := render.NewImage(SheetWidth, h*animation.FrogRows)
	half := animation.FrogRows / 2
	lift := [...]float64{0, 3, 6, 3, 0}
	squash := [...]float64{1, 0.9, 0.85, 0.9, 1.2}

	for i := 0; i < half; i++ {
		f := frame{img, i * h}
		cy := 14 - lift[i]
		f.ellipse(8, cy, 6*squash[i], 4/squash[i], Palette.FrogBody)
		f.ellipse(8, cy+1.5, 4*squash[i], 2/squash[i], Palette.FrogBelly)
		f.ellipse(11, cy-3.5, 1.5, 1.5, Palette.FrogBody)
		f.set(11, int(cy-4), Palette.Eye)
	}
	for i := 0; i < half; i++ {
		mirrorFrame(img, h, i, half+i)
	}
	return img
}

// CreateBlobSheet draws idle plus a seven frame bounce facing right
func CreateBlobSheet() *render.Image {
	const h = BlobFrameHeight
	img := render.NewImage(SheetWidth, h*animation.BlobRows)
	half := animation.BlobRows / 2
	lift := [...]float64{0, 0, 3, 7, 9, 7, 3, 0}
	stretch := [...]float64{1, 0.8, 1.1, 1.2, 1.1, 1.1, 1, 0.75}

	for i := 0; i < half; i++ {
		f := frame{img, i * h}
		ry := 5 * stretch[i]
		rx := 10 / stretch[i] / 1.6
		cy := 24 - ry - lift[i]
		f.ellipse(8, cy, rx, ry, Palette.BlobBody)
		f.ellipse(10, cy-ry/2, 1.5, 1, Palette.BlobShine)
		f.set(10, int(cy), Palette.Eye)
	}
	for i := 0; i < half; i++ {
		mirrorFrame(img, h, i, half+i)
	}
	return img
}

// CreateFireSheet draws a flickering flame, each frame with a different height and lean
func CreateFireSheet() *render.Image {
	const h = FireFrameHeight
	img := render.NewImage(SheetWidth, h*animation.FireRows)
	heights := [...]float64{6, 7, 5.5, 7.5, 6.5, 5}
	lean := [...]float64{0, 0.5, -0.5, 1, -1, 0}

	for i := 0; i < animation.FireRows; i++ {
		f := frame{img, i * h}
		f.ellipse(8+lean[i], 15-heights[i], 5, heights[i], Palette.FlameOuter)
		f.ellipse(8+lean[i]/2, 15-heights[i]/2, 2.5, heights[i]/2, Palette.FlameInner)
		f.rect(3, 14, 10, 2, Palette.WallEdge)
	}
	return img
}

// CreateTileset draws one row of TileSize tiles, noise is seeded so output is stable
func CreateTileset() *render.Image {
	img := render.NewImage(TileSize*tileCount, TileSize)
	rng := vmath.NewFastRand(0x5eed)

	for t := 0; t < tileCount; t++ {
		ox := t * TileSize
		switch t {
		case TileGrass, TileGrassDark, TileFlowers:
			base, speck := Palette.Grass, Palette.GrassDark
			if t == TileGrassDark {
				base, speck = Palette.GrassDark, Palette.Grass
			}
			fillRect(img, ox, 0, TileSize, TileSize, base)
			for n := 0; n < 12; n++ {
				img.Set(ox+rng.Intn(TileSize), rng.Intn(TileSize), speck)
			}
			if t == TileFlowers {
				for n := 0; n < 4; n++ {
					img.Set(ox+2+rng.Intn(TileSize-4), 2+rng.Intn(TileSize-4), Palette.Flower)
				}
			}
		case TileWall:
			fillRect(img, ox, 0, TileSize, TileSize, Palette.Wall)
			for y := 0; y < TileSize; y += 4 {
				fillRect(img, ox, y, TileSize, 1, Palette.WallEdge)
				shift := (y / 4 % 2) * 4
				for x := shift; x < TileSize; x += 8 {
					img.Set(ox+x, y+1, Palette.WallEdge)
					img.Set(ox+x, y+2, Palette.WallEdge)
					img.Set(ox+x, y+3, Palette.WallEdge)
				}
			}
		case TileWater:
			fillRect(img, ox, 0, TileSize, TileSize, Palette.Water)
			for y := 2; y < TileSize; y += 5 {
				x := rng.Intn(TileSize - 4)
				fillRect(img, ox+x, y, 4, 1, Palette.WaterLight)
			}
		case TilePath:
			fillRect(img, ox, 0, TileSize, TileSize, Palette.Path)
			for n := 0; n < 8; n++ {
				img.Set(ox+rng.Intn(TileSize), rng.Intn(TileSize), Palette.Wall)
			}
		}
	}
	return img
}
