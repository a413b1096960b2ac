package level

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/vmath"
)

// Group names recognised in a level
const (
	GroupCollision = "Collision"
	GroupEntities  = "Entities"
)

// Tile gid flip flags, same bit layout as TMX
const (
	flipHorizontal = 1 << 31
	flipVertical   = 1 << 30
	flipDiagonal   = 1 << 29
	flipMask       = flipHorizontal | flipVertical | flipDiagonal
)

// Load errors
var (
	ErrInvalidLevel    = errors.New("invalid level")
	ErrUnsupportedFlip = errors.New("unsupported tile flip")
	ErrUnknownGroup    = errors.New("unknown object group")
	ErrTileSize        = errors.New("tileset does not divide into tiles")
	ErrTileIndex       = errors.New("tile gid out of tileset range")
	ErrLayerSize       = errors.New("layer data does not match map size")
)

// Level is the loaded world: composited layers, collision shapes on the ground plane and spawn points
type Level struct {
	Name        string
	PixelWidth  int
	PixelHeight int
	Layers      []Layer
	Shapes      []vmath.Rect
	Spawns      []SpawnPoint
}

// Layer is one fully composited tile layer
type Layer struct {
	Name     string
	Image    *render.Image
	Parallax vmath.Vec2
}

// SpawnPoint is a named entity placement in ground-plane coordinates
type SpawnPoint struct {
	Name       string
	Pos        vmath.Vec3
	Size       vmath.Vec2
	Properties map[string]any
}

// String returns a string property
func (s SpawnPoint) String(key string) (string, bool) {
	v, ok := s.Properties[key].(string)
	return v, ok
}

// Float returns a numeric property, YAML ints are widened
func (s SpawnPoint) Float(key string) (float64, bool) {
	switch v := s.Properties[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// WorldHeight is the map height in pixels, the Y flip pivot
func (l *Level) WorldHeight() float32 { return float32(l.PixelHeight) }

// Load parses and builds a level in one step
func Load(data []byte, tileset *render.Image) (*Level, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc, tileset)
}

// Build composites every layer from the tileset and converts object groups to world space.
// Objects are authored Y down from the top-left; the world runs Z up from the bottom.
func Build(doc *Document, tileset *render.Image) (*Level, error) {
	if tileset.Width()%doc.TileWidth != 0 || tileset.Height()%doc.TileHeight != 0 {
		return nil, errors.Wrapf(ErrTileSize, "tileset %dx%d, tile %dx%d",
			tileset.Width(), tileset.Height(), doc.TileWidth, doc.TileHeight)
	}

	lvl := &Level{
		Name:        doc.Name,
		PixelWidth:  doc.Width * doc.TileWidth,
		PixelHeight: doc.Height * doc.TileHeight,
	}

	for _, ld := range doc.Layers {
		layer, err := buildLayer(doc, ld, tileset)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %q", ld.Name)
		}
		lvl.Layers = append(lvl.Layers, layer)
	}

	mapH := float32(lvl.PixelHeight)
	for _, g := range doc.Groups {
		switch g.Name {
		case GroupCollision:
			for _, o := range g.Objects {
				lvl.Shapes = append(lvl.Shapes, vmath.Rect{
					Pos:  vmath.Vec2{X: o.X, Y: mapH - o.Y - o.Height},
					Size: vmath.Vec2{X: o.Width, Y: o.Height},
				})
			}
		case GroupEntities:
			for _, o := range g.Objects {
				lvl.Spawns = append(lvl.Spawns, SpawnPoint{
					Name:       o.Name,
					Pos:        vmath.Vec3{X: o.X + o.Width/2, Y: 0, Z: mapH - o.Y - o.Height},
					Size:       vmath.Vec2{X: o.Width, Y: o.Height},
					Properties: o.Properties,
				})
			}
		default:
			return nil, errors.Wrapf(ErrUnknownGroup, "%q", g.Name)
		}
	}

	return lvl, nil
}

func buildLayer(doc *Document, ld LayerDocument, tileset *render.Image) (Layer, error) {
	parallax := vmath.Vec2{X: 1, Y: 1}
	if ld.ParallaxX != nil {
		parallax.X = *ld.ParallaxX
	}
	if ld.ParallaxY != nil {
		parallax.Y = *ld.ParallaxY
	}

	gids, err := parseGids(ld.Data, doc.Width, doc.Height)
	if err != nil {
		return Layer{}, err
	}

	tw, th := doc.TileWidth, doc.TileHeight
	columns := tileset.Width() / tw
	tileCount := columns * (tileset.Height() / th)
	img := render.NewImage(doc.Width*tw, doc.Height*th)
	tileSize := vmath.Vec2{X: float32(tw), Y: float32(th)}

	for i, gid := range gids {
		if gid&flipMask != 0 {
			return Layer{}, errors.Wrapf(ErrUnsupportedFlip, "gid %#x at tile %d", gid, i)
		}
		if gid == 0 {
			continue
		}
		tile := int(gid) - 1
		if tile >= tileCount {
			return Layer{}, errors.Wrapf(ErrTileIndex, "gid %d, tileset has %d tiles", gid, tileCount)
		}
		src := vmath.Vec2{X: float32((tile % columns) * tw), Y: float32((tile / columns) * th)}
		dst := vmath.Vec2{X: float32((i % doc.Width) * tw), Y: float32((i / doc.Width) * th)}
		render.Blit(img, dst, tileset, src, tileSize, 1)
	}

	return Layer{Name: ld.Name, Image: img, Parallax: parallax}, nil
}

func parseGids(data string, width, height int) ([]uint32, error) {
	rows := make([]string, 0, height)
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != height {
		return nil, errors.Wrapf(ErrLayerSize, "%d rows, want %d", len(rows), height)
	}

	gids := make([]uint32, 0, width*height)
	for y, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) != width {
			return nil, errors.Wrapf(ErrLayerSize, "row %d has %d tiles, want %d", y, len(fields), width)
		}
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidLevel, "row %d: %v", y, err)
			}
			gids = append(gids, uint32(v))
		}
	}
	return gids, nil
}
