package game

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/asset"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/engine"
	"github.com/lixenwraith/sombervale/input"
	"github.com/lixenwraith/sombervale/level"
	"github.com/lixenwraith/sombervale/render"
	"github.com/lixenwraith/sombervale/render/renderers"
	"github.com/lixenwraith/sombervale/system"
	"github.com/lixenwraith/sombervale/vmath"
)

// Options configure a new game context, zero values select the defaults
type Options struct {
	// LevelPath is a YAML level file, empty loads the embedded vale
	LevelPath string
	// AssetDir overrides generated sheets with PNG files found there
	AssetDir string
	// Seed fixes the gameplay random stream, zero draws one from entropy
	Seed  uint64
	Debug bool
	Clock core.Clock
	Audio component.SoundPlayer
}

// Context owns the world and drives its two workloads for a frontend
type Context struct {
	World *engine.World
	Seed  uint64
}

// New loads assets and level, builds the world and registers both workloads
func New(opts Options) (*Context, error) {
	sheets, err := asset.Load(opts.AssetDir)
	if err != nil {
		return nil, errors.Wrap(err, "load sheets")
	}
	data, err := asset.LevelData(opts.LevelPath)
	if err != nil {
		return nil, err
	}
	lvl, err := level.Load(data, sheets.Tileset)
	if err != nil {
		return nil, errors.Wrap(err, "load level")
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = vmath.NewEntropySeed()
	}

	w := engine.NewWorld()
	engine.AddUnique(w, system.WorldSource{Level: lvl, Sheets: sheets, Clock: clock, Seed: seed})
	engine.AddUnique(w, component.Audio{Player: opts.Audio})
	engine.AddUnique(w, component.Debug{Enabled: opts.Debug})

	if err := system.LoadWorld(w); err != nil {
		return nil, errors.Wrap(err, "build world")
	}
	if err := system.Register(w); err != nil {
		return nil, err
	}
	if err := renderers.Register(w); err != nil {
		return nil, err
	}

	return &Context{World: w, Seed: seed}, nil
}

// Update runs one simulation tick
func (c *Context) Update() error {
	return c.World.RunWorkload(system.UpdateWorkload)
}

// Draw renders the world and returns the framebuffer, valid until the next Draw
func (c *Context) Draw() (*render.Image, error) {
	if err := c.World.RunWorkload(renderers.DrawWorkload); err != nil {
		return nil, err
	}
	return c.Framebuffer(), nil
}

// Framebuffer returns the render target without drawing
func (c *Context) Framebuffer() *render.Image {
	release, err := engine.Borrow(c.World, engine.ReadsUnique[component.Framebuffer]())
	if err != nil {
		return nil
	}
	defer release()
	fb, _ := engine.Unique[component.Framebuffer](c.World)
	return fb.Image
}

// Input forwards a key edge into the controls, edges during a running workload are an error
func (c *Context) Input(k input.Key, pressed bool) error {
	release, err := engine.Borrow(c.World, engine.WritesUnique[input.Controls]())
	if err != nil {
		return err
	}
	defer release()
	if controls, ok := engine.UniqueMut[input.Controls](c.World); ok {
		controls.Update(k, pressed)
	}
	return nil
}

// ToggleDebug flips the debug overlay and returns the new state
func (c *Context) ToggleDebug() bool {
	dbg, ok := engine.UniqueMut[component.Debug](c.World)
	if !ok {
		engine.AddUnique(c.World, component.Debug{Enabled: true})
		return true
	}
	dbg.Enabled = !dbg.Enabled
	return dbg.Enabled
}

// Stats is a snapshot for logs and the headless summary
type Stats struct {
	Entities int
	Frogs    int
	Blobs    int
	Leader   bool
	Outro    bool
	XP       int
	PP       int
}

func (c *Context) Stats() Stats {
	w := c.World
	s := Stats{
		Entities: w.EntityCount(),
		Frogs:    engine.ViewOf[*animation.Frog](w).Len(),
		Blobs:    engine.ViewOf[*animation.Blob](w).Len(),
		Leader:   engine.ViewOf[*animation.Jean](w).Len() > 0,
		Outro:    engine.HasUnique[component.Outro](w),
	}
	if stats, ok := engine.Unique[component.JeanStats](w); ok {
		s.XP = stats.XP
	}
	if power, ok := engine.Unique[component.FrogPower](w); ok {
		s.PP = power.PP
	}
	return s
}
