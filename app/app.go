package app

import (
	"errors"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	trackaudio "github.com/soocke/framepaint-go/audio"
	"github.com/soocke/framepaint-go/config"
	"github.com/soocke/framepaint-go/domain/compose"
	"github.com/soocke/framepaint-go/domain/frames"
	"github.com/soocke/framepaint-go/domain/paint"
	"github.com/soocke/framepaint-go/domain/playback"
	"github.com/soocke/framepaint-go/ui/hud"
)

// Game drives the fixed-rate tick loop over the playback engine. Each tick
// applies input first, then evaluates the clock, materializes the frame,
// applies strokes, and composes the output for presentation — strictly in
// that order, single-threaded.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger

	frames  *frames.Source
	clock   *playback.Clock
	overlay *paint.Overlay
	brush   *paint.Brush
	writer  *compose.Writer

	width, height int
	frame         *image.RGBA // current materialized frame
	display       *image.RGBA // composited output, reused across ticks
	present       *ebiten.Image
	now           func() time.Time

	drawing bool
	erasing bool
}

// NewGame assembles the session: frame sequence, optional audio feed, clock,
// overlay and save writer. Audio failures degrade to wall-clock playback.
func NewGame(cfg *config.Config, logger *slog.Logger) *Game {
	g := &Game{cfg: cfg, logger: logger, now: time.Now}

	g.frames = frames.NewSource(cfg.FramesDir, logger)
	g.width, g.height = g.frames.CanvasSize()

	var feed playback.AudioFeed
	if !cfg.NoAudio {
		if _, err := os.Stat(cfg.AudioPath); err == nil {
			player, err := trackaudio.NewPlayer(cfg.AudioPath, cfg.Volume, logger)
			if err != nil {
				if logger != nil {
					logger.Warn("audio unavailable, using wall clock", "path", cfg.AudioPath, "error", err)
				}
			} else {
				feed = player
			}
		}
	}
	g.clock = playback.NewClock(g.frames.Count(), cfg.FPS, feed, logger)

	g.overlay = paint.NewOverlay(g.width, g.height)
	g.brush = paint.NewBrush(cfg.BrushRadius, cfg.BrushRGBA())
	g.writer = compose.NewWriter(cfg.OutputDir, logger)

	g.display = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	g.materialize()

	if logger != nil {
		logger.Info("starting player",
			"frames", g.frames.Count(),
			"canvas_w", g.width,
			"canvas_h", g.height,
			"fps", g.clock.Rate(),
			"clock_source", g.clock.Source().String(),
		)
		if n := g.frames.Count(); n > 0 {
			sample := make([]string, 0, 3)
			for i := 0; i < n && i < 3; i++ {
				sample = append(sample, g.frames.Path(i))
			}
			logger.Info("sample frames", "paths", strings.Join(sample, ", "))
		}
	}

	// With a loaded track, playback starts immediately.
	if feed != nil {
		g.clock.TogglePlay(g.now())
	}
	return g
}

// Update runs one tick: input, clock, materialize, paint.
func (g *Game) Update() error {
	now := g.now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.TogglePlay(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.clock.SeekForward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.clock.SeekBackward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.overlay.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.brush.Grow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.brush.Shrink()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drawing = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drawing = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.erasing = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.erasing = false
	}

	g.clock.Evaluate(now)
	g.materialize()

	mx, my := ebiten.CursorPosition()
	if g.drawing && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.overlay.StrokeDraw(mx, my, g.brush.Radius, g.brush.Color)
	}
	if g.erasing && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.overlay.StrokeErase(mx, my, g.brush.Radius)
	}
	return nil
}

// materialize fetches the pixels for the clock's current index. Same-index
// requests are cache hits; a decode failure substitutes a placeholder and is
// retried on the next tick.
func (g *Game) materialize() {
	pix, err := g.frames.Materialize(g.clock.Index())
	if err != nil && g.logger != nil {
		g.logger.Debug("showing placeholder frame", "index", g.clock.Index(), "error", err)
	}
	g.frame = pix
}

func (g *Game) save() {
	path, err := g.writer.Save(g.frame, g.overlay.Image(), g.clock.Index())
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("save failed", "error", err)
		}
		return
	}
	if g.logger != nil {
		g.logger.Info("saved", "path", path)
	}
}

// Draw composes frame + overlay + HUD and presents the result.
func (g *Game) Draw(screen *ebiten.Image) {
	elems := []compose.HUDElement{
		hud.Status(g.clock.Index(), g.frames.Count(), g.clock.Rate(), g.brush.Radius, g.clock.Playing()),
		hud.Help(g.height),
	}
	compose.Compose(g.display, g.frame, g.overlay.Image(), elems)
	if g.present == nil {
		g.present = ebiten.NewImage(g.width, g.height)
	}
	g.present.WritePixels(g.display.Pix)
	screen.DrawImage(g.present, nil)
}

// Layout fixes the logical screen to the canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the user quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Frame Paint")
	ebiten.SetTPS(g.clock.Rate())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
