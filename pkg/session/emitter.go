package session

import (
	"context"
	"time"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/observability"
)

// emit is the controller's frame emitter. It presents scene, then waits out
// the frame delay while serving input: navigation and speed changes are
// applied at once, and an interrupting command ends the wait with Cancel.
// After the delay, input that arrived meanwhile is drained the same way.
func (c *Controller) emit(ctx context.Context, scene anim.Scene) anim.Signal {
	c.frames++
	observability.Sort().OnFrame(ctx, string(c.kind), c.frames)
	c.live = scene
	c.present()

	timer := time.NewTimer(c.pacer.Duration(scene.Hold))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return anim.Cancel
		case ev := <-c.inbox.ch:
			if c.during(ev) {
				return anim.Cancel
			}
		case <-timer.C:
			return c.drain(ctx)
		}
	}
}

// drain applies every pending event without blocking.
func (c *Controller) drain(ctx context.Context) anim.Signal {
	for {
		ev, ok := c.inbox.Poll()
		if !ok {
			break
		}
		if c.during(ev) {
			return anim.Cancel
		}
	}
	if ctx.Err() != nil {
		return anim.Cancel
	}
	return anim.Continue
}

// during handles ev while a sort runs and reports whether it cancels the
// sort. An interrupting event is kept as the next command.
func (c *Controller) during(ev Event) bool {
	if ev.interrupts() {
		c.logger.Debug("interrupt", "event", ev, "frame", c.frames)
		c.pending = &ev
		return true
	}
	switch ev.Kind {
	case EventButton:
		if ev.Button == ButtonSpeedDown || ev.Button == ButtonSpeedUp {
			c.adjustSpeed(ev.Button)
			c.present()
			return false
		}
		c.logger.Debug("ignored while sorting", "event", ev)
	case EventSubmit:
		c.logger.Debug("ignored while sorting", "event", ev)
	default:
		if c.navigate(ev) {
			c.present()
		}
	}
	return false
}
