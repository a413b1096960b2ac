package level

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the authored level file before any compositing
type Document struct {
	Name       string          `yaml:"name"`
	TileWidth  int             `yaml:"tile_width"`
	TileHeight int             `yaml:"tile_height"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Tileset    string          `yaml:"tileset"`
	Layers     []LayerDocument `yaml:"layers"`
	Groups     []GroupDocument `yaml:"groups"`
}

// LayerDocument holds whitespace separated tile gids, one text line per tile row
type LayerDocument struct {
	Name      string   `yaml:"name"`
	ParallaxX *float32 `yaml:"parallax_x"`
	ParallaxY *float32 `yaml:"parallax_y"`
	Data      string   `yaml:"data"`
}

// GroupDocument is a named object layer, either Collision or Entities
type GroupDocument struct {
	Name    string           `yaml:"name"`
	Objects []ObjectDocument `yaml:"objects"`
}

// ObjectDocument is a rectangle in map pixels with the origin top-left and Y down
type ObjectDocument struct {
	Name       string         `yaml:"name"`
	X          float32        `yaml:"x"`
	Y          float32        `yaml:"y"`
	Width      float32        `yaml:"width"`
	Height     float32        `yaml:"height"`
	Properties map[string]any `yaml:"properties"`
}

// Parse decodes a YAML level, unknown fields are rejected
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	if doc.TileWidth <= 0 || doc.TileHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidLevel, "tile size %dx%d", doc.TileWidth, doc.TileHeight)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidLevel, "map size %dx%d", doc.Width, doc.Height)
	}
	return &doc, nil
}
