package paint

import (
	"image"
	"image/color"
	"image/draw"
)

// Overlay is the persistent transparent paint layer. It is created once at
// canvas size, accumulates strokes across frame changes, and is only mutated
// or cleared for the life of the process, never replaced.
type Overlay struct {
	img *image.RGBA

	// Disc stamp cached per radius; rebuilt whenever the radius changes.
	stamp       *image.Alpha
	stampRadius int
}

// NewOverlay returns a fully transparent overlay of the given dimensions.
func NewOverlay(w, h int) *Overlay {
	return &Overlay{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing raster for compositing. The same raster is
// reused for the life of the overlay.
func (o *Overlay) Image() *image.RGBA { return o.img }

// Bounds returns the fixed overlay rectangle.
func (o *Overlay) Bounds() image.Rectangle { return o.img.Bounds() }

// StrokeDraw composites a filled disc of col centered at (x, y) onto the
// overlay with source-over blending. Coordinates outside the canvas are
// clipped by the raster bounds. Repeated application at the same location is
// idempotent for an opaque color.
func (o *Overlay) StrokeDraw(x, y, radius int, col color.RGBA) {
	stamp := o.disc(radius)
	r := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1)
	draw.DrawMask(o.img, r, &image.Uniform{col}, image.Point{}, stamp, stamp.Bounds().Min, draw.Over)
}

// StrokeErase removes previously drawn pixels within the disc by blending
// with a fully transparent stamp under a per-channel minimum rule: every
// channel inside the disc becomes min(existing, 0) = 0, pixels outside stay
// untouched.
func (o *Overlay) StrokeErase(x, y, radius int) {
	stamp := o.disc(radius)
	area := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(o.img.Bounds())
	for py := area.Min.Y; py < area.Max.Y; py++ {
		row := o.img.PixOffset(area.Min.X, py)
		for px := area.Min.X; px < area.Max.X; px++ {
			if stamp.AlphaAt(px-x+radius, py-y+radius).A > 0 {
				off := row + (px-area.Min.X)*4
				o.img.Pix[off] = 0
				o.img.Pix[off+1] = 0
				o.img.Pix[off+2] = 0
				o.img.Pix[off+3] = 0
			}
		}
	}
}

// Clear resets the entire raster to fully transparent. Irreversible.
func (o *Overlay) Clear() {
	pix := o.img.Pix
	for i := range pix {
		pix[i] = 0
	}
}

// disc returns the cached stamp for radius, rebuilding it on radius change.
func (o *Overlay) disc(radius int) *image.Alpha {
	if radius < MinRadius {
		radius = MinRadius
	}
	if o.stamp != nil && o.stampRadius == radius {
		return o.stamp
	}
	size := radius*2 + 1
	stamp := image.NewAlpha(image.Rect(0, 0, size, size))
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				stamp.SetAlpha(dx+radius, dy+radius, color.Alpha{A: 0xff})
			}
		}
	}
	o.stamp = stamp
	o.stampRadius = radius
	return stamp
}
