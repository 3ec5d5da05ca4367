package compose

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer persists flattened saves as PNG files into an output directory
// created on demand. Save is a pure side effect: an I/O failure is returned
// to the caller and leaves overlay and playback state untouched.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter returns a Writer targeting dir. The directory is not created
// until the first save.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Save flattens frame+overlay and writes it under a name derived from the
// frame index. It returns the written path.
func (w *Writer) Save(frame, overlay *image.RGBA, index int) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("frame_%05d_combined.png", index))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	flat := Flatten(frame, overlay)
	if err := png.Encode(f, flat); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if w.logger != nil {
		w.logger.Info("saved flattened frame", "path", path, "index", index)
	}
	return path, nil
}
