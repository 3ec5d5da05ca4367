package playback

import "time"

// AudioFeed abstracts the external audio transport used as the master clock.
// The clock only reads the reported position and issues start/pause/resume
// commands; it never drives the feed's internal timing.
type AudioFeed interface {
	// Start begins looped playback from the beginning of the track.
	Start() error
	Pause()
	Resume()
	// Position reports the feed's elapsed playback time. ok is false while no
	// valid position is available, in which case the clock falls back to wall
	// time anchored at the audio start.
	Position() (pos time.Duration, ok bool)
}

// Source identifies the active master clock for the per-tick evaluation.
type Source int

const (
	SourceWall Source = iota
	SourceAudio
)

func (s Source) String() string {
	switch s {
	case SourceWall:
		return "wall"
	case SourceAudio:
		return "audio"
	default:
		return "unknown"
	}
}
