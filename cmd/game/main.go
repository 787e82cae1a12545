package main

import (
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/replay"
	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/audio"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	mapFlag := flag.String("map", "", "Map id (default: from game.json)")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: time based)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	watchFlag := flag.Bool("watch", false, "Reload catalogs when files under -config change")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	debugFlag := flag.Bool("debug", false, "Debug logging and overlay")
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	var input system.InputSource = system.NewInputSystem()
	seed := *seedFlag
	mapID := *mapFlag
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		input = replayer
		seed = data.Seed
		if mapID == "" {
			mapID = data.Map
		}
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, replayer.TotalFrames(), seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a, err := newApp(options{
		Loader: loader,
		MapID:  mapID,
		Seed:   seed,
		Input:  input,
		Record: *recordFlag,
		Debug:  *debugFlag,
		Logger: logger,
		Audio: func(settings *config.SettingsConfig, catalog *config.Catalog) battle.AudioPlayer {
			if *muteFlag {
				return &audio.Silent{}
			}
			ctx := ebitenaudio.NewContext(audio.SampleRate)
			return audio.Load(ctx, loader.FS(), settings.Audio.Dir, catalog.Audio, settings.Audio.Volume, logger)
		},
	})
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}

	if *watchFlag {
		if *configDir == "" {
			logger.Warn("-watch needs -config, embedded configs cannot change")
		} else {
			w, err := config.NewWatcher(*configDir)
			if err != nil {
				log.Fatalf("Failed to watch %s: %v", *configDir, err)
			}
			defer func() { _ = w.Close() }()
			a.game.SetPreUpdate(a.watch(w))
		}
	}

	// Set up ebiten
	display := a.settings.Display
	title := display.Title
	if title == "" {
		title = "Top-Down Cartoon Game"
	}
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(a.game); err != nil {
		log.Fatal(err)
	}
	if replayer != nil {
		logger.Info("replay stopped", "frame", replayer.CurrentFrame(), "of", replayer.TotalFrames())
	}
	a.overworld.SaveRecording()
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
