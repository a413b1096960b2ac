// Package window runs the game in a desktop window through ebiten.
package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/game"
	"github.com/lixenwraith/sombervale/input"
	"github.com/lixenwraith/sombervale/parameter"
)

// DefaultScale is the window magnification of the 160x128 framebuffer
const DefaultScale = 4

type binding struct {
	key  ebiten.Key
	game input.Key
}

var bindings = []binding{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyW, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyS, input.KeyDown},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeySpace, input.KeyUse},
	{ebiten.KeyEnter, input.KeyUse},
	{ebiten.KeyTab, input.KeySelect},
}

// Muter toggles audio output, implemented by the audio engine
type Muter interface {
	ToggleMute() bool
}

// Window adapts a game context to ebiten.Game
type Window struct {
	ctx    *game.Context
	muter  Muter
	screen *ebiten.Image
}

// New creates the adapter, muter may be nil
func New(ctx *game.Context, muter Muter) *Window {
	return &Window{
		ctx:    ctx,
		muter:  muter,
		screen: ebiten.NewImage(parameter.ScreenWidth, parameter.ScreenHeight),
	}
}

// Run opens the window and blocks until it is closed or the player quits
func Run(ctx *game.Context, muter Muter, scale int) error {
	if scale < 1 {
		scale = DefaultScale
	}
	ebiten.SetWindowTitle("Sombervale")
	ebiten.SetWindowSize(parameter.ScreenWidth*scale, parameter.ScreenHeight*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(New(ctx, muter))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update forwards key edges and runs one simulation tick
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && w.muter != nil {
		log.Printf("audio muted: %v", w.muter.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		log.Printf("debug overlay: %v", w.ctx.ToggleDebug())
	}

	// Several physical keys share a game key, only the last state wins
	for _, b := range bindings {
		switch {
		case inpututil.IsKeyJustPressed(b.key):
			if err := w.ctx.Input(b.game, true); err != nil {
				return err
			}
		case inpututil.IsKeyJustReleased(b.key) && !w.anyHeld(b.game):
			if err := w.ctx.Input(b.game, false); err != nil {
				return err
			}
		}
	}
	return w.ctx.Update()
}

func (w *Window) anyHeld(k input.Key) bool {
	for _, b := range bindings {
		if b.game == k && ebiten.IsKeyPressed(b.key) {
			return true
		}
	}
	return false
}

// Draw renders the world and uploads the framebuffer
func (w *Window) Draw(screen *ebiten.Image) {
	fb, err := w.ctx.Draw()
	if err != nil {
		log.Printf("draw: %v", err)
		return
	}
	w.screen.WritePixels(fb.Pix())
	screen.DrawImage(w.screen, nil)
}

// Layout keeps the logical resolution fixed, ebiten scales it to the window
func (w *Window) Layout(_, _ int) (int, int) {
	return parameter.ScreenWidth, parameter.ScreenHeight
}
