package anim

import (
	"context"
	"time"
)

// Pacer blocks between frames for the current Delay.
type Pacer struct {
	Delay     *Delay
	HoldExtra time.Duration

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer returns a pacer reading delay before every wait.
func NewPacer(delay *Delay, holdExtra time.Duration) *Pacer {
	return &Pacer{Delay: delay, HoldExtra: holdExtra, sleep: Sleep}
}

// Wait blocks for the frame delay, or the hold duration when hold is set.
// It returns ctx.Err() if the context ends first.
func (p *Pacer) Wait(ctx context.Context, hold bool) error {
	d := p.Duration(hold)
	sleep := p.sleep
	if sleep == nil {
		sleep = Sleep
	}
	return sleep(ctx, d)
}

// Duration returns how long the next frame lingers.
func (p *Pacer) Duration(hold bool) time.Duration {
	if hold {
		return p.Delay.HoldDuration(p.HoldExtra)
	}
	return p.Delay.Duration()
}

// Sleep waits for d or until ctx is done, whichever comes first.
// A non-positive d only checks the context.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
