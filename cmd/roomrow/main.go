package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/audio/output"
	"github.com/lixenwraith/roomrow/config"
	"github.com/lixenwraith/roomrow/engine"
	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/input"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/render"
	"github.com/lixenwraith/roomrow/room"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML or TOML config file")
	debugFlag  = flag.Bool("debug", false, "Start with debug tooling and file logging")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "roomrow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	debugMode := *debugFlag || cfg.Debug.Enabled

	if logFile := setupLogging(debugMode); logFile != nil {
		defer logFile.Close()
	}
	session := uuid.New()
	log.Printf("session %s: start, config %q", session, *configFlag)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Audio is optional, the game runs silent when the device cannot open
	var player entity.SamplePlayer = audio.Nop{}
	var bank audio.Bank
	if cfg.Audio.Enabled {
		mixer := audio.NewMixer(cfg.Audio.SampleRate, cfg.Audio.Volume)
		bank = audio.RegisterBank(mixer)
		if device, err := output.Open(mixer); err != nil {
			log.Printf("audio start failed: %v (continuing without audio)", err)
		} else {
			player = mixer
			defer device.Close()
		}
	}

	game := engine.NewGame(engine.Options{
		Gravity:  cfg.Physics.Gravity(),
		Debug:    debugMode,
		StepMode: cfg.Debug.Step,
		Seed:     seed,
		FPS:      cfg.Simulation.FPS,
		Store:    room.NewStore(cfg.Rooms.Dir),
		Audio:    player,
		Bank:     bank,
	})
	if err := game.LoadRooms(); err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}
	game.ResetEntities()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROOMROW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("session %s: crash: %v", session, r)
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	loop(screen, game)
	log.Printf("session %s: exit", session)
	return nil
}

// loop owns the simulation: events arrive over a channel, ticks and frames run on the ticker
func loop(screen tcell.Screen, game *engine.Game) {
	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewHandler(game)

	eventChan := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			game.Frame(now.Sub(last))
			last = now
			game.Render(renderer)
		}
	}
}
