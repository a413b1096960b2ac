// Package terminal runs the game inside a terminal through tcell, drawing
// the framebuffer with half-block cells and latching key presses.
package terminal

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/game"
	"github.com/lixenwraith/sombervale/parameter"
)

// FrameInterval is the tick and redraw period, ~60 FPS
const FrameInterval = 16 * time.Millisecond

// Muter toggles audio output, implemented by the audio engine
type Muter interface {
	ToggleMute() bool
}

// Frontend couples a tcell screen to a game context
type Frontend struct {
	ctx    *game.Context
	screen tcell.Screen
	clock  core.Clock
	latch  *keyLatch
	muter  Muter
}

// New wraps an initialized screen, muter may be nil
func New(ctx *game.Context, screen tcell.Screen, clock core.Clock, muter Muter) *Frontend {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &Frontend{
		ctx:    ctx,
		screen: screen,
		clock:  clock,
		latch:  newKeyLatch(),
		muter:  muter,
	}
}

// Run opens the terminal, plays until quit and restores the terminal on the way out
func Run(ctx *game.Context, muter Muter) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Restore the terminal before the panic reaches the caller
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()
	return New(ctx, screen, nil, muter).Loop()
}

// Loop polls events and ticks until a quit command or a game error
func (f *Frontend) Loop() error {
	done := make(chan struct{})
	defer close(done)
	events := f.pollEvents(done)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := f.HandleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			if err := f.Tick(); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed
func (f *Frontend) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// HandleEvent applies one tcell event and reports whether the player asked to quit
func (f *Frontend) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := Translate(ev)
		switch cmd.Action {
		case ActionQuit:
			return true, nil
		case ActionKey:
			if f.latch.Press(cmd.Key, f.clock.Now()) {
				return false, f.ctx.Input(cmd.Key, true)
			}
		case ActionMute:
			if f.muter != nil {
				log.Printf("audio muted: %v", f.muter.ToggleMute())
			}
		case ActionDebug:
			log.Printf("debug overlay: %v", f.ctx.ToggleDebug())
		}
	case *tcell.EventResize:
		f.screen.Clear()
		f.screen.Sync()
		if w, h := f.screen.Size(); w < parameter.ScreenWidth || h < parameter.ScreenHeight/2 {
			log.Printf("terminal %dx%d crops the %dx%d view", w, h, parameter.ScreenWidth, parameter.ScreenHeight/2)
		}
	}
	return false, nil
}

// Tick releases stale keys, advances the simulation and presents a frame
func (f *Frontend) Tick() error {
	for _, k := range f.latch.Expire(f.clock.Now()) {
		if err := f.ctx.Input(k, false); err != nil {
			return err
		}
	}
	if err := f.ctx.Update(); err != nil {
		return errors.Wrap(err, "update")
	}
	fb, err := f.ctx.Draw()
	if err != nil {
		return errors.Wrap(err, "draw")
	}
	Present(f.screen, fb)
	return nil
}
