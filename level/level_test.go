package level

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// testTileset is two 2x2 tiles side by side: green then purple
func testTileset() *render.Image {
	img := render.NewImage(4, 2)
	for y := 0; y < 2; y++ {
		img.Set(0, y, render.ColorGreen)
		img.Set(1, y, render.ColorGreen)
		img.Set(2, y, render.ColorPurple)
		img.Set(3, y, render.ColorPurple)
	}
	return img
}

const testLevel = `
name: test
tile_width: 2
tile_height: 2
width: 3
height: 2
tileset: default
layers:
  - name: ground
    data: |
      1 2 0
      0 0 1
  - name: far
    parallax_x: 0.5
    data: |
      2,2,2
      2,2,2
groups:
  - name: Collision
    objects:
      - {x: 0, y: 0, width: 2, height: 1}
  - name: Entities
    objects:
      - name: Jean
        x: 2
        y: 1
        width: 2
        height: 2
      - name: Blob
        x: 0
        y: 2
        width: 2
        height: 2
        properties:
          direction: left
          speed: 3
`

func TestLoadComposesLayers(t *testing.T) {
	lvl, err := Load([]byte(testLevel), testTileset())
	require.NoError(t, err)

	assert.Equal(t, 6, lvl.PixelWidth)
	assert.Equal(t, 4, lvl.PixelHeight)
	require.Len(t, lvl.Layers, 2)

	ground := lvl.Layers[0].Image
	assert.Equal(t, render.ColorGreen, ground.At(0, 0))
	assert.Equal(t, render.ColorPurple, ground.At(3, 1))
	assert.Equal(t, render.RGBA{}, ground.At(5, 0), "gid 0 is empty")
	assert.Equal(t, render.ColorGreen, ground.At(4, 3))

	assert.Equal(t, vmath.Vec2{X: 1, Y: 1}, lvl.Layers[0].Parallax)
	assert.Equal(t, vmath.Vec2{X: 0.5, Y: 1}, lvl.Layers[1].Parallax, "missing axis defaults to 1")
}

func TestLoadFlipsObjectsToGroundPlane(t *testing.T) {
	lvl, err := Load([]byte(testLevel), testTileset())
	require.NoError(t, err)

	require.Len(t, lvl.Shapes, 1)
	assert.Equal(t, vmath.Rect{Pos: vmath.Vec2{X: 0, Y: 3}, Size: vmath.Vec2{X: 2, Y: 1}}, lvl.Shapes[0])

	require.Len(t, lvl.Spawns, 2)
	jean := lvl.Spawns[0]
	assert.Equal(t, "Jean", jean.Name)
	assert.Equal(t, vmath.Vec3{X: 3, Y: 0, Z: 1}, jean.Pos)

	blob := lvl.Spawns[1]
	dir, ok := blob.String("direction")
	require.True(t, ok)
	assert.Equal(t, "left", dir)
	speed, ok := blob.Float("speed")
	require.True(t, ok)
	assert.Equal(t, 3.0, speed)
	_, ok = blob.String("missing")
	assert.False(t, ok)
	assert.Equal(t, float32(4), lvl.WorldHeight())
}

func TestLoadErrors(t *testing.T) {
	base := func(data, groups string) string {
		return "tile_width: 2\ntile_height: 2\nwidth: 1\nheight: 1\nlayers:\n  - name: l\n    data: \"" + data + "\"\n" + groups
	}

	tests := []struct {
		name    string
		doc     string
		tileset *render.Image
		want    error
	}{
		{"flipped tile", base("2147483649", ""), testTileset(), ErrUnsupportedFlip},
		{"gid past tileset", base("3", ""), testTileset(), ErrTileIndex},
		{"wrong row width", base("1 1", ""), testTileset(), ErrLayerSize},
		{"bad tileset size", base("1", ""), render.NewImage(3, 2), ErrTileSize},
		{"unknown group", base("1", "groups:\n  - name: Triggers\n"), testTileset(), ErrUnknownGroup},
		{"zero tile size", "tile_width: 0\ntile_height: 2\nwidth: 1\nheight: 1\n", testTileset(), ErrInvalidLevel},
		{"garbage gid", base("x", ""), testTileset(), ErrInvalidLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc), tt.tileset)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("tile_width: 2\ntile_height: 2\nwidth: 1\nheight: 1\nmusic: loud\n"))
	assert.Error(t, err)
}
