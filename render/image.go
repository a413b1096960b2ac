package render

import (
	"image"
	"image/draw"
)

// Image is an RGBA8 pixel buffer with row stride equal to width*4
// Sprite sheets and tilemap layers are built once and then only read; the framebuffer is written every frame
type Image struct {
	width  int
	height int
	pix    []byte
}

// NewImage allocates a transparent image
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic("render: negative image size")
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// FromRGBA copies a decoded image into a tightly packed buffer
func FromRGBA(src image.Image) *Image {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	img := NewImage(b.Dx(), b.Dy())
	copy(img.pix, rgba.Pix)
	return img
}

func (i *Image) Width() int  { return i.width }
func (i *Image) Height() int { return i.height }

// Pix exposes the raw buffer for presentation layers
func (i *Image) Pix() []byte { return i.pix }

// Bounds returns the image size as a vector
func (i *Image) Bounds() (w, h float32) { return float32(i.width), float32(i.height) }

// At returns the pixel at x,y, out of range reads return transparent black
func (i *Image) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= i.width || y >= i.height {
		return RGBA{}
	}
	o := (y*i.width + x) * 4
	return RGBA{i.pix[o], i.pix[o+1], i.pix[o+2], i.pix[o+3]}
}

// Set writes a pixel, out of range writes are dropped
func (i *Image) Set(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= i.width || y >= i.height {
		return
	}
	o := (y*i.width + x) * 4
	copy(i.pix[o:o+4], c[:])
}

// Clear resets every pixel to transparent black
func (i *Image) Clear() {
	clear(i.pix)
}

// ToRGBA wraps the buffer as a standard library image sharing the same pixels
func (i *Image) ToRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    i.pix,
		Stride: i.width * 4,
		Rect:   image.Rect(0, 0, i.width, i.height),
	}
}
