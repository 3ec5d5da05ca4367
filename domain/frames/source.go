package frames

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
)

// ErrDecode marks a frame whose source image could not be decoded. It is
// non-fatal: Materialize substitutes placeholder pixels and playback continues.
// The failing index is retried on the next request.
var ErrDecode = errors.New("frame decode failed")

// Canvas size used when the sequence is empty or the first frame is unreadable.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Source presents a directory of still images as a fixed, sorted, indexable
// sequence normalized to one canvas size. The sequence is built once at
// construction; at most one decoded frame is cached at a time.
type Source struct {
	logger *slog.Logger
	paths  []string
	width  int
	height int

	cached    *image.RGBA
	cachedIdx int

	blank       *image.RGBA // solid fill shown in blank-canvas mode
	placeholder *image.RGBA // neutral substitute for undecodable frames
}

// NewSource scans dir for frame images (png/jpg/jpeg/bmp), sorted by name.
// A missing or empty directory yields a valid zero-frame source. The canvas
// size is taken from the first frame, or falls back to the default constants.
func NewSource(dir string, logger *slog.Logger) *Source {
	s := &Source{logger: logger, cachedIdx: -1, width: DefaultWidth, height: DefaultHeight}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if logger != nil {
			logger.Warn("frames directory unavailable, starting blank canvas", "dir", dir, "error", err)
		}
		return s
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg", ".bmp":
			s.paths = append(s.paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(s.paths)

	if len(s.paths) > 0 {
		if w, h, err := probeSize(s.paths[0]); err != nil {
			if logger != nil {
				logger.Warn("failed to read first frame, using default canvas", "path", s.paths[0], "error", err)
			}
		} else {
			s.width, s.height = w, h
		}
	}
	return s
}

func probeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// Count returns the size of the fixed sequence. Zero is valid (blank-canvas mode).
func (s *Source) Count() int { return len(s.paths) }

// CanvasSize returns the shared dimensions of all surfaces.
func (s *Source) CanvasSize() (w, h int) { return s.width, s.height }

// Path returns the source location for index i. Valid only when Count() > 0.
func (s *Source) Path(i int) string { return s.paths[i] }

// Next returns the index after i, wrapping modulo Count().
func (s *Source) Next(i int) int {
	if len(s.paths) == 0 {
		return 0
	}
	return (i + 1) % len(s.paths)
}

// Prev returns the index before i, wrapping modulo Count().
func (s *Source) Prev(i int) int {
	n := len(s.paths)
	if n == 0 {
		return 0
	}
	return (i - 1 + n) % n
}

// Materialize returns the pixels for index, scaled to the canvas size.
// Requesting the same index twice in a row is a cache hit and costs no decode.
// When the sequence is empty a constant solid fill is returned. When decoding
// fails, a neutral placeholder is returned together with a wrapped ErrDecode;
// the failure is not cached so the index is retried on the next call.
func (s *Source) Materialize(index int) (*image.RGBA, error) {
	if len(s.paths) == 0 {
		if s.blank == nil {
			s.blank = solidFill(s.width, s.height, color.RGBA{30, 30, 30, 255})
		}
		return s.blank, nil
	}
	index = ((index % len(s.paths)) + len(s.paths)) % len(s.paths)
	if s.cached != nil && s.cachedIdx == index {
		return s.cached, nil
	}

	img, err := decodeFile(s.paths[index])
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("frame decode failed", "index", index, "path", s.paths[index], "error", err)
		}
		if s.placeholder == nil {
			s.placeholder = solidFill(s.width, s.height, color.RGBA{0, 0, 0, 255})
		}
		return s.placeholder, fmt.Errorf("%w: %s: %v", ErrDecode, s.paths[index], err)
	}

	s.cached = toCanvas(img, s.width, s.height)
	s.cachedIdx = index
	return s.cached, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// toCanvas converts img to RGBA at exactly w x h, scaling when the source
// dimensions differ.
func toCanvas(img image.Image, w, h int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func solidFill(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
