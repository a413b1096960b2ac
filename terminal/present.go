package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sombervale/render"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// CellSize is the terminal area needed to show img without cropping
func CellSize(img *render.Image) (cols, rows int) {
	return img.Width(), (img.Height() + 1) / 2
}

// Present writes img centered on screen, two pixel rows per cell, and shows it.
// A screen smaller than the image crops the bottom and right edges.
func Present(screen tcell.Screen, img *render.Image) {
	sw, sh := screen.Size()
	cols, rows := CellSize(img)
	ox := max((sw-cols)/2, 0)
	oy := max((sh-rows)/2, 0)

	for cy := 0; cy < rows && oy+cy < sh; cy++ {
		for x := 0; x < cols && ox+x < sw; x++ {
			top := img.At(x, cy*2)
			bottom := img.At(x, cy*2+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(ox+x, oy+cy, halfBlock, nil, style)
		}
	}
	screen.Show()
}

func cellColor(c render.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}
