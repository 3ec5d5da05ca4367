package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/framepaint-go/app"
	"github.com/soocke/framepaint-go/config"
	"github.com/soocke/framepaint-go/debug"
)

func main() {
	var (
		cfgPath   = flag.String("config", "framepaint.json", "path to JSON config file")
		fps       = flag.Int("fps", 0, "playback FPS (overrides config)")
		framesDir = flag.String("frames", "", "frames directory (overrides config)")
		audioPath = flag.String("audio", "", "audio file to play (overrides config)")
		noAudio   = flag.Bool("no-audio", false, "do not load or play audio even if present")
		debugFlag = flag.Bool("debug", false, "enable debug logging and memstats")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *framesDir != "" {
		cfg.FramesDir = *framesDir
	}
	if *audioPath != "" {
		cfg.AudioPath = *audioPath
	}
	if *noAudio {
		cfg.NoAudio = true
	}
	_ = cfg.Validate()

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
	}

	game := app.NewGame(cfg, logger)
	if err := game.Run(); err != nil {
		logger.Error("player exited with error", "error", err)
		os.Exit(1)
	}
}
