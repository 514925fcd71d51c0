package session

import "context"

// DefaultInboxSize is the queue capacity used when none is given.
const DefaultInboxSize = 256

// Inbox is the queue between the input collaborator and the controller.
// Send may be called from any goroutine; the receiving methods belong to
// the controller.
type Inbox struct {
	ch chan Event
}

// NewInbox returns an inbox holding up to size pending events.
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{ch: make(chan Event, size)}
}

// Send queues ev without blocking. It reports false when the queue is full
// and the event was dropped.
func (q *Inbox) Send(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Poll returns the next pending event, if any, without blocking.
func (q *Inbox) Poll() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Wait blocks until an event arrives or ctx is done.
func (q *Inbox) Wait(ctx context.Context) (Event, error) {
	select {
	case ev := <-q.ch:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Len returns the number of pending events.
func (q *Inbox) Len() int { return len(q.ch) }
