package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FPS != 30 || cfg.BrushRadius != 6 {
		t.Fatalf("unexpected defaults: fps=%d radius=%d", cfg.FPS, cfg.BrushRadius)
	}
}

func TestValidateClampsRanges(t *testing.T) {
	cfg := &Config{FPS: 0, BrushRadius: 999, Volume: 3, BrushColor: "nope"}
	_ = cfg.Validate()
	if cfg.FPS != 1 {
		t.Fatalf("fps not clamped: %d", cfg.FPS)
	}
	if cfg.BrushRadius != 200 {
		t.Fatalf("radius not clamped: %d", cfg.BrushRadius)
	}
	if cfg.Volume != 1.0 {
		t.Fatalf("volume not clamped: %v", cfg.Volume)
	}
	if cfg.BrushColor != "#ffffff" {
		t.Fatalf("invalid color not reset: %q", cfg.BrushColor)
	}
}

func TestBrushRGBA(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrushColor = "#ff0000"
	if got := cfg.BrushRGBA(); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("expected opaque red, got %v", got)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.FPS != DefaultConfig().FPS {
		t.Fatalf("expected defaults, got fps=%d", cfg.FPS)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.FPS = 12
	cfg.FramesDir = "frames"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FPS != 12 || loaded.FramesDir != "frames" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
}
