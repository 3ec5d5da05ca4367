package paint

import (
	"bytes"
	"image/color"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestOverlay_StartsTransparent(t *testing.T) {
	o := NewOverlay(4, 4)
	for _, b := range o.Image().Pix {
		if b != 0 {
			t.Fatal("new overlay must be fully transparent")
		}
	}
}

func TestOverlay_StrokeDrawFillsDisc(t *testing.T) {
	o := NewOverlay(20, 20)
	o.StrokeDraw(10, 10, 3, white)

	if c := o.Image().RGBAAt(10, 10); c != white {
		t.Fatalf("disc center not painted: %v", c)
	}
	if c := o.Image().RGBAAt(13, 10); c != white {
		t.Fatalf("disc edge not painted: %v", c)
	}
	if c := o.Image().RGBAAt(13, 13); c.A != 0 {
		t.Fatalf("disc corner painted outside radius: %v", c)
	}
	if c := o.Image().RGBAAt(0, 0); c.A != 0 {
		t.Fatalf("far pixel painted: %v", c)
	}
}

func TestOverlay_StrokeDrawIdempotent(t *testing.T) {
	o := NewOverlay(20, 20)
	o.StrokeDraw(10, 10, 4, white)
	snapshot := make([]byte, len(o.Image().Pix))
	copy(snapshot, o.Image().Pix)

	o.StrokeDraw(10, 10, 4, white)
	if !bytes.Equal(snapshot, o.Image().Pix) {
		t.Fatal("repeated identical stroke changed the overlay")
	}
}

func TestOverlay_StrokeDrawClipsAtBounds(t *testing.T) {
	o := NewOverlay(10, 10)
	o.StrokeDraw(0, 0, 3, white)   // partially off-canvas
	o.StrokeDraw(-9, -9, 3, white) // fully off-canvas
	if c := o.Image().RGBAAt(0, 0); c != white {
		t.Fatalf("clipped stroke did not paint corner: %v", c)
	}
}

func TestOverlay_StrokeEraseClearsDiscOnly(t *testing.T) {
	o := NewOverlay(20, 20)
	o.StrokeDraw(10, 10, 6, white)
	o.StrokeErase(10, 10, 2)

	if c := o.Image().RGBAAt(10, 10); c.A != 0 {
		t.Fatalf("erase left alpha at center: %v", c)
	}
	// Outside the erase disc the paint must survive.
	if c := o.Image().RGBAAt(10, 15); c != white {
		t.Fatalf("erase leaked outside its disc: %v", c)
	}
	// The stamp is disc-shaped, not a square: the corner of the erase
	// bounding box stays painted.
	if c := o.Image().RGBAAt(12, 12); c != white {
		t.Fatalf("erase square-cleared its bounding box: %v", c)
	}
}

func TestOverlay_EraseStampSurvivesRadiusChanges(t *testing.T) {
	o := NewOverlay(40, 40)
	o.StrokeDraw(20, 20, 10, white)
	o.StrokeErase(20, 20, 2)
	o.StrokeErase(20, 20, 5) // radius change rebuilds the cached stamp
	if c := o.Image().RGBAAt(20, 25); c.A != 0 {
		t.Fatalf("larger erase radius not applied: %v", c)
	}
	if c := o.Image().RGBAAt(20, 27); c != white {
		t.Fatalf("erase exceeded its radius: %v", c)
	}
}

func TestOverlay_Clear(t *testing.T) {
	o := NewOverlay(16, 16)
	o.StrokeDraw(8, 8, 5, white)
	o.Clear()
	for _, b := range o.Image().Pix {
		if b != 0 {
			t.Fatal("clear left residue")
		}
	}
}

func TestBrush_RadiusClamped(t *testing.T) {
	b := NewBrush(6, white)
	for i := 0; i < 300; i++ {
		b.Grow()
	}
	if b.Radius != MaxRadius {
		t.Fatalf("expected max radius %d, got %d", MaxRadius, b.Radius)
	}
	for i := 0; i < 500; i++ {
		b.Shrink()
	}
	if b.Radius != MinRadius {
		t.Fatalf("expected min radius %d, got %d", MinRadius, b.Radius)
	}
	if nb := NewBrush(0, white); nb.Radius != MinRadius {
		t.Fatalf("constructor did not clamp radius: %d", nb.Radius)
	}
}
