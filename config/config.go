package config

import (
	"encoding/json"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds runtime configuration for playback and painting.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Playback parameters
	FramesDir string  `json:"frames_dir"`
	AudioPath string  `json:"audio_path"`
	NoAudio   bool    `json:"no_audio"`
	FPS       int     `json:"fps"`
	Volume    float64 `json:"volume"`

	// Painting parameters
	BrushRadius int    `json:"brush_radius"`
	BrushColor  string `json:"brush_color"`

	// Save destination for flattened frames
	OutputDir string `json:"output_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		FramesDir:   "assets/frames",
		AudioPath:   "assets/audio.mp3",
		NoAudio:     false,
		FPS:         30,
		Volume:      1.0,
		BrushRadius: 6,
		BrushColor:  "#ffffff",
		OutputDir:   "assets/output",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FPS < 1 {
		c.FPS = 1
	}
	if c.BrushRadius < 1 {
		c.BrushRadius = 1
	}
	if c.BrushRadius > 200 {
		c.BrushRadius = 200
	}
	if c.Volume < 0 || c.Volume > 1 {
		c.Volume = 1.0
	}
	if _, err := colorful.Hex(c.BrushColor); err != nil {
		c.BrushColor = "#ffffff"
	}
	if c.FramesDir == "" {
		c.FramesDir = "assets/frames"
	}
	if c.OutputDir == "" {
		c.OutputDir = "assets/output"
	}
	return nil
}

// BrushRGBA returns the configured brush color as an opaque RGBA value.
func (c *Config) BrushRGBA() color.RGBA {
	col, err := colorful.Hex(c.BrushColor)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
