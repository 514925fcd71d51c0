package anim

import "time"

// Pacing defaults.
const (
	DefaultDelayMs = 50
	DefaultStepMs  = 50
	MaxDelayMs     = 1000
	DefaultHoldMs  = 50
)

// Delay is the adjustable per-frame delay in milliseconds, clamped to
// [0, max]. It is read before every paced step, so adjustments made while a
// sort runs take effect on the next frame.
type Delay struct {
	ms  int
	max int
}

// NewDelay returns a delay of ms milliseconds clamped to [0, limit].
// A non-positive limit falls back to MaxDelayMs.
func NewDelay(ms, limit int) *Delay {
	if limit <= 0 {
		limit = MaxDelayMs
	}
	d := &Delay{max: limit}
	d.Set(ms)
	return d
}

// Millis returns the current delay in milliseconds.
func (d *Delay) Millis() int { return d.ms }

// Duration returns the current delay as a time.Duration.
func (d *Delay) Duration() time.Duration { return time.Duration(d.ms) * time.Millisecond }

// Set replaces the delay, clamping it into range.
func (d *Delay) Set(ms int) {
	d.ms = min(max(ms, 0), d.max)
}

// Adjust adds delta milliseconds, clamps, and returns the new value.
func (d *Delay) Adjust(delta int) int {
	d.Set(d.ms + delta)
	return d.ms
}

// HoldDuration is how long a hold frame lingers: twice the delay plus extra.
func (d *Delay) HoldDuration(extra time.Duration) time.Duration {
	return 2*d.Duration() + extra
}
