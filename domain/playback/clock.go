package playback

import (
	"log/slog"
	"time"
)

// Clock decides which frame index should be visible each tick, given
// play/pause state, seek input and the active master clock. It has two
// states, Paused and Playing, and two clock sources: the audio feed's
// reported position when a feed is present and started, otherwise wall time.
//
// All methods must be called from the single tick loop; the clock holds no
// locks.
type Clock struct {
	logger *slog.Logger
	feed   AudioFeed
	rate   int // target frames per second, clamped to >= 1
	count  int // fixed frame count; 0 is blank-canvas mode

	playing bool
	index   int

	audioStarted bool
	audioAnchor  time.Time     // wall time at which the feed was started
	pauseAcc     time.Duration // total paused span, keeps fallback timing continuous
	pausedAt     time.Time     // set while paused

	lastStep time.Time // wall source: time of the last single-step advance
}

// NewClock returns a paused clock at index 0. feed may be nil, which pins the
// clock to the wall source for the whole session.
func NewClock(count, rate int, feed AudioFeed, logger *slog.Logger) *Clock {
	if rate < 1 {
		rate = 1
	}
	if count < 0 {
		count = 0
	}
	return &Clock{logger: logger, feed: feed, rate: rate, count: count}
}

// Index returns the frame index that should be displayed now.
func (c *Clock) Index() int { return c.index }

// Playing reports whether the clock is in the Playing state.
func (c *Clock) Playing() bool { return c.playing }

// Rate returns the clamped target frame rate.
func (c *Clock) Rate() int { return c.rate }

// Source reports the master clock currently in effect.
func (c *Clock) Source() Source {
	if c.feed != nil && c.audioStarted {
		return SourceAudio
	}
	return SourceWall
}

// TogglePlay flips between Paused and Playing. The frame index never changes
// on the transition itself.
func (c *Clock) TogglePlay(now time.Time) {
	if c.playing {
		c.pause(now)
	} else {
		c.play(now)
	}
}

func (c *Clock) play(now time.Time) {
	c.playing = true
	c.lastStep = now
	if !c.pausedAt.IsZero() {
		c.pauseAcc += now.Sub(c.pausedAt)
		c.pausedAt = time.Time{}
	}
	if c.feed == nil {
		return
	}
	if !c.audioStarted {
		if err := c.feed.Start(); err != nil {
			if c.logger != nil {
				c.logger.Warn("audio start failed, falling back to wall clock", "error", err)
			}
			c.feed = nil
			return
		}
		c.audioStarted = true
		c.audioAnchor = now
	} else {
		c.feed.Resume()
	}
}

func (c *Clock) pause(now time.Time) {
	c.playing = false
	c.pausedAt = now
	if c.feed != nil && c.audioStarted {
		c.feed.Pause()
	}
}

// SeekForward advances the index by one step with wraparound. Accepted only
// while Paused; while Playing the clock owns the index and the call is a
// no-op. Returns whether the index changed.
func (c *Clock) SeekForward() bool {
	if c.playing || c.count == 0 {
		return false
	}
	c.index = (c.index + 1) % c.count
	return true
}

// SeekBackward retreats the index by one step with wraparound, Paused-only.
func (c *Clock) SeekBackward() bool {
	if c.playing || c.count == 0 {
		return false
	}
	c.index = (c.index - 1 + c.count) % c.count
	return true
}

// Evaluate computes the frame index for this tick. changed reports whether
// the index moved and the frame should be re-materialized.
//
// With an audio master the target index is an absolute mapping
// floor(elapsed*rate) mod count, so the visual stream resynchronizes to the
// audio position after any stall instead of drifting. With the wall source
// the index advances by exactly one step once a full tick interval has
// elapsed since the last advance.
func (c *Clock) Evaluate(now time.Time) (index int, changed bool) {
	if !c.playing || c.count == 0 {
		return c.index, false
	}

	if c.Source() == SourceAudio {
		var elapsed time.Duration
		if pos, ok := c.feed.Position(); ok && pos >= 0 {
			elapsed = pos
		} else {
			elapsed = now.Sub(c.audioAnchor) - c.pauseAcc
		}
		target := int(elapsed.Seconds()*float64(c.rate)) % c.count
		if target < 0 {
			target += c.count
		}
		if target != c.index {
			c.index = target
			return c.index, true
		}
		return c.index, false
	}

	interval := time.Second / time.Duration(c.rate)
	if now.Sub(c.lastStep) >= interval {
		c.index = (c.index + 1) % c.count
		c.lastStep = now
		return c.index, true
	}
	return c.index, false
}
