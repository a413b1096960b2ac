package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/sombervale/audio"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/core"
	"github.com/lixenwraith/sombervale/game"
	"github.com/lixenwraith/sombervale/terminal"
	"github.com/lixenwraith/sombervale/window"
)

const (
	logDir      = "logs"
	logFileName = "sombervale.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

var (
	frontendFlag = flag.String("frontend", "terminal", "Frontend: terminal, window, headless")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/sombervale.log and start with the debug overlay")
	seedFlag     = flag.Uint64("seed", 0, "Gameplay random seed, 0 picks one")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	levelFlag    = flag.String("level", "", "Level YAML file, empty loads the built-in vale")
	assetsFlag   = flag.String("assets", "", "Directory with PNG sheets overriding the generated ones")
	scaleFlag    = flag.Int("scale", window.DefaultScale, "Window magnification")
	profileFlag  = flag.String("profile", "", "Profile mode: cpu, mem")
	ticksFlag    = flag.Int("ticks", 600, "Ticks to simulate in headless mode")
)

// setupLogging routes the standard logger to a rotated file when debug is set, otherwise discards it
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("sombervale-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}
}

func main() {
	flag.Parse()
	os.Exit(execute())
}

// execute runs the game and returns the process exit code once logging and profiling are flushed
func execute() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	if p := startProfile(*profileFlag); p != nil {
		defer p.Stop()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sombervale: %v\n", err)
		log.Printf("exit: %v", err)
		return 1
	}
	return 0
}

func run() error {
	headless := *frontendFlag == "headless"

	opts := game.Options{
		LevelPath: *levelFlag,
		AssetDir:  *assetsFlag,
		Seed:      *seedFlag,
		Debug:     *debugFlag,
	}

	var muter terminal.Muter
	if headless {
		opts.Audio = component.NopPlayer{}
		opts.Clock = core.NewMockClock(time.Now())
	} else if ae := startAudio(*muteFlag); ae != nil {
		defer ae.Stop()
		opts.Audio = ae
		muter = ae
	}

	ctx, err := game.New(opts)
	if err != nil {
		return err
	}
	log.Printf("sombervale started, frontend %s, seed %d", *frontendFlag, ctx.Seed)

	switch *frontendFlag {
	case "terminal":
		return terminal.Run(ctx, muter)
	case "window":
		return window.Run(ctx, muter, *scaleFlag)
	case "headless":
		return runHeadless(ctx, opts.Clock.(*core.MockClock), *ticksFlag)
	default:
		return fmt.Errorf("unknown frontend %q", *frontendFlag)
	}
}

// startAudio returns nil when no audio device could be opened
func startAudio(muted bool) *audio.AudioEngine {
	ae := audio.NewAudioEngine(audio.LoadAudioConfig())
	if err := ae.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
		return nil
	}
	if muted && !ae.IsMuted() {
		ae.ToggleMute()
	}
	return ae
}

// runHeadless simulates fixed 16ms ticks on a mock clock and prints a summary
func runHeadless(ctx *game.Context, clock *core.MockClock, ticks int) error {
	for i := 0; i < ticks; i++ {
		clock.Advance(terminal.FrameInterval)
		if err := ctx.Update(); err != nil {
			return err
		}
		if _, err := ctx.Draw(); err != nil {
			return err
		}
	}
	s := ctx.Stats()
	summary := fmt.Sprintf("ticks=%d seed=%d entities=%d frogs=%d blobs=%d leader=%v outro=%v xp=%d pp=%d",
		ticks, ctx.Seed, s.Entities, s.Frogs, s.Blobs, s.Leader, s.Outro, s.XP, s.PP)
	log.Print(summary)
	fmt.Println(summary)
	return nil
}
