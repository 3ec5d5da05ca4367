// Package audio adapts the ebiten audio pipeline to the playback.AudioFeed
// contract: looped playback with pause/resume and a readable position that
// serves as the master clock.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/soocke/framepaint-go/domain/playback"
)

const sampleRate = 48000

// ErrInit marks audio that could not be loaded or started. It is non-fatal:
// the playback clock falls back to the wall-clock source for the session.
var ErrInit = errors.New("audio init failed")

// loopableStream is satisfied by the mp3 and wav decoder streams.
type loopableStream interface {
	io.ReadSeeker
	Length() int64
}

// Player wraps an ebiten audio player for one looping track.
type Player struct {
	logger *slog.Logger
	player *eaudio.Player
	path   string
}

// NewPlayer decodes the track at path (mp3 or wav), wraps it in an infinite
// loop and prepares a player at the given volume. The underlying audio
// context is process-global and created on first use.
func NewPlayer(path string, volume float64, logger *slog.Logger) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	var stream loopableStream
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav", ".wave":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInit, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInit, path, err)
	}

	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	}
	p, err := ctx.NewPlayer(eaudio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	if volume >= 0 && volume <= 1 {
		p.SetVolume(volume)
	}
	if logger != nil {
		logger.Info("loaded audio", "path", path)
	}
	return &Player{logger: logger, player: p, path: path}, nil
}

// Start begins looped playback from the beginning of the track.
func (p *Player) Start() error {
	p.player.Play()
	return nil
}

// Pause suspends playback, freezing the reported position.
func (p *Player) Pause() { p.player.Pause() }

// Resume continues playback from the paused position.
func (p *Player) Resume() { p.player.Play() }

// Position reports the elapsed playback time. ok is false while the player
// is not actively producing audio.
func (p *Player) Position() (time.Duration, bool) {
	if p.player == nil || !p.player.IsPlaying() {
		return 0, false
	}
	return p.player.Position(), true
}

// SetVolume adjusts playback volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.player.SetVolume(v)
}

// Close releases the underlying player.
func (p *Player) Close() error { return p.player.Close() }

// Ensure contract satisfaction
var _ playback.AudioFeed = (*Player)(nil)
