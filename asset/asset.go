package asset

import (
	"bytes"
	_ "embed"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/render"
)

//go:embed levels/vale.yaml
var DefaultLevel []byte

// Sheet geometry, every sheet is a single SheetWidth-wide column of frames
const (
	SheetWidth = 16
	TileSize   = 16

	JeanFrameHeight = 32
	FrogFrameHeight = 19
	BlobFrameHeight = 25
	FireFrameHeight = 16
)

// Sheet file names looked up in an asset directory
const (
	JeanFile    = "jean.png"
	FrogFile    = "frog.png"
	BlobFile    = "blob.png"
	FireFile    = "fire.png"
	TilesetFile = "tileset.png"
)

var ErrSheetSize = errors.New("sprite sheet has wrong size")

// Sheets holds every image the world needs
type Sheets struct {
	Jean    *render.Image
	Frog    *render.Image
	Blob    *render.Image
	Fire    *render.Image
	Tileset *render.Image
}

// Placeholders returns procedurally generated sheets
func Placeholders() *Sheets {
	return &Sheets{
		Jean:    CreateJeanSheet(),
		Frog:    CreateFrogSheet(),
		Blob:    CreateBlobSheet(),
		Fire:    CreateFireSheet(),
		Tileset: CreateTileset(),
	}
}

type sheetSpec struct {
	file        string
	frameHeight int
	rows        int
	dst         **render.Image
}

// Load starts from placeholders and replaces each sheet found in dir
// An empty dir returns the placeholders unchanged
func Load(dir string) (*Sheets, error) {
	s := Placeholders()
	if dir == "" {
		return s, nil
	}

	specs := []sheetSpec{
		{JeanFile, JeanFrameHeight, animation.JeanRows, &s.Jean},
		{FrogFile, FrogFrameHeight, animation.FrogRows, &s.Frog},
		{BlobFile, BlobFrameHeight, animation.BlobRows, &s.Blob},
		{FireFile, FireFrameHeight, animation.FireRows, &s.Fire},
	}
	for _, sp := range specs {
		img, err := loadOptional(filepath.Join(dir, sp.file))
		if err != nil {
			return nil, err
		}
		if img == nil {
			continue
		}
		if img.Width() != SheetWidth || img.Height() != sp.frameHeight*sp.rows {
			return nil, errors.Wrapf(ErrSheetSize, "%s is %dx%d, want %dx%d",
				sp.file, img.Width(), img.Height(), SheetWidth, sp.frameHeight*sp.rows)
		}
		*sp.dst = img
	}

	tiles, err := loadOptional(filepath.Join(dir, TilesetFile))
	if err != nil {
		return nil, err
	}
	if tiles != nil {
		if tiles.Width()%TileSize != 0 || tiles.Height()%TileSize != 0 || tiles.Width() == 0 || tiles.Height() == 0 {
			return nil, errors.Wrapf(ErrSheetSize, "%s is %dx%d, want multiples of %d",
				TilesetFile, tiles.Width(), tiles.Height(), TileSize)
		}
		s.Tileset = tiles
	}
	return s, nil
}

// LoadPNG decodes a PNG file into a render image
func LoadPNG(path string) (*render.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return DecodePNG(data)
}

// DecodePNG decodes PNG bytes into a render image
func DecodePNG(data []byte) (*render.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode png")
	}
	return render.FromRGBA(img), nil
}

// LevelData returns the level file at path, or the embedded vale when path is empty
func LevelData(path string) ([]byte, error) {
	if path == "" {
		return DefaultLevel, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read level %s", path)
	}
	return data, nil
}

func loadOptional(path string) (*render.Image, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return LoadPNG(path)
}
