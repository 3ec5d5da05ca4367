package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/framepaint-go/domain/compose"
)

// Panel geometry and colors for the translucent boxes behind HUD text.
const (
	padX           = 8
	padY           = 4
	marginX        = 4
	marginY        = 4
	minStatusWidth = 300
	bottomOffset   = 28
)

var (
	backing   = color.RGBA{0, 0, 0, 160}
	statusCol = color.RGBA{255, 255, 255, 255}
	helpCol   = color.RGBA{200, 200, 200, 255}
)

const helpText = "Space=Play/Pause  [ ] / Arrows=Frame  c=clear  s=save  +/- brush"

// TextBox renders one line of text onto a semi-transparent backing panel. The
// panel is at least minWidth pixels wide.
func TextBox(text string, fg color.RGBA, minWidth int) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil() + 2*padX
	if w < minWidth {
		w = minWidth
	}
	h := face.Metrics().Height.Ceil() + 2*padY
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{backing}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{fg},
		Face: face,
		Dot:  fixed.P(padX, padY+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}

// Status returns the top-left status element for the current tick.
func Status(frameIndex, frameCount, fps, brushRadius int, playing bool) compose.HUDElement {
	shown := frameCount
	if shown < 1 {
		shown = 1
	}
	state := "No"
	if playing {
		state = "Yes"
	}
	text := fmt.Sprintf("Frame %d/%d  FPS=%d  Brush=%d  Playing=%s",
		frameIndex+1, shown, fps, brushRadius, state)
	return compose.HUDElement{
		Image: TextBox(text, statusCol, minStatusWidth),
		At:    image.Pt(marginX, marginY),
	}
}

var helpBox *image.RGBA

// Help returns the static key-binding element anchored above the bottom edge.
// The rendered panel is built once and reused.
func Help(canvasHeight int) compose.HUDElement {
	if helpBox == nil {
		helpBox = TextBox(helpText, helpCol, 0)
	}
	return compose.HUDElement{
		Image: helpBox,
		At:    image.Pt(marginX, canvasHeight-bottomOffset),
	}
}
