package compose

import (
	"image"
	"image/draw"
)

// HUDElement is an already-rendered panel blitted at a fixed screen position
// on top of the frame and overlay. HUD content is transient: it appears in
// composited output but never in flattened saves.
type HUDElement struct {
	Image *image.RGBA
	At    image.Point
}

// Compose draws frame as the base layer into dst, the overlay on top via
// source-over blending, then each HUD element at its position. Deterministic
// for identical inputs; runs every tick.
func Compose(dst, frame, overlay *image.RGBA, hud []HUDElement) {
	b := dst.Bounds()
	draw.Draw(dst, b, frame, frame.Bounds().Min, draw.Src)
	draw.Draw(dst, b, overlay, overlay.Bounds().Min, draw.Over)
	for _, e := range hud {
		if e.Image == nil {
			continue
		}
		r := e.Image.Bounds().Sub(e.Image.Bounds().Min).Add(e.At)
		draw.Draw(dst, r, e.Image, e.Image.Bounds().Min, draw.Over)
	}
}

// Flatten returns a new image holding the base+overlay blend only, for the
// save operation. The result is independent of subsequent overlay mutation.
func Flatten(frame, overlay *image.RGBA) *image.RGBA {
	b := frame.Bounds().Sub(frame.Bounds().Min)
	out := image.NewRGBA(b)
	draw.Draw(out, b, frame, frame.Bounds().Min, draw.Src)
	draw.Draw(out, b, overlay, overlay.Bounds().Min, draw.Over)
	return out
}
