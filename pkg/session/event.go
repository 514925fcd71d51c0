package session

import "fmt"

// EventKind identifies an input event.
type EventKind int

const (
	EventClose EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventScroll
	EventPan
	EventButton
	EventSubmit
	EventResize
)

var eventNames = map[EventKind]string{
	EventClose:     "close",
	EventMouseDown: "mouse-down",
	EventMouseUp:   "mouse-up",
	EventMouseMove: "mouse-move",
	EventScroll:    "scroll",
	EventPan:       "pan",
	EventButton:    "button",
	EventSubmit:    "submit",
	EventResize:    "resize",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Button names a control-bar button.
type Button int

const (
	ButtonBubble Button = iota
	ButtonInsertion
	ButtonSelection
	ButtonQuick
	ButtonMerge
	ButtonReset
	ButtonNewArray
	ButtonSpeedDown
	ButtonSpeedUp
)

var buttonLabels = []string{
	ButtonBubble:    "Bubble",
	ButtonInsertion: "Insertion",
	ButtonSelection: "Selection",
	ButtonQuick:     "Quick",
	ButtonMerge:     "Merge",
	ButtonReset:     "Reset",
	ButtonNewArray:  "New Array",
	ButtonSpeedDown: "Speed -",
	ButtonSpeedUp:   "Speed +",
}

// Buttons lists the control bar left to right.
var Buttons = []Button{
	ButtonBubble, ButtonInsertion, ButtonSelection, ButtonQuick, ButtonMerge,
	ButtonReset, ButtonNewArray, ButtonSpeedDown, ButtonSpeedUp,
}

// Label returns the text drawn on the button.
func (b Button) Label() string {
	if b < 0 || int(b) >= len(buttonLabels) {
		return "?"
	}
	return buttonLabels[b]
}

func (b Button) String() string { return b.Label() }

// Event is one report from the input collaborator. Only the fields that
// belong to Kind are set.
type Event struct {
	Kind   EventKind
	X, Y   float64 // pointer position for mouse events, canvas delta for pan
	Delta  float64 // wheel notches for scroll events, positive is up
	Button Button  // for button events
	Text   string  // for submit events
}

// Close reports that the window was closed.
func Close() Event { return Event{Kind: EventClose} }

// MouseDown reports a primary-button press at (x, y).
func MouseDown(x, y float64) Event { return Event{Kind: EventMouseDown, X: x, Y: y} }

// MouseUp reports a primary-button release at (x, y).
func MouseUp(x, y float64) Event { return Event{Kind: EventMouseUp, X: x, Y: y} }

// MouseMove reports pointer motion to (x, y).
func MouseMove(x, y float64) Event { return Event{Kind: EventMouseMove, X: x, Y: y} }

// Scroll reports a wheel movement of delta notches.
func Scroll(delta float64) Event { return Event{Kind: EventScroll, Delta: delta} }

// Pan reports a keyboard pan by (dx, dy) canvas units.
func Pan(dx, dy float64) Event { return Event{Kind: EventPan, X: dx, Y: dy} }

// Press reports a button activation.
func Press(b Button) Event { return Event{Kind: EventButton, Button: b} }

// Submit reports a line of text entered after New Array.
func Submit(text string) Event { return Event{Kind: EventSubmit, Text: text} }

// Resize reports the visible canvas area, in canvas units, after the host
// view changed size.
func Resize(width, height float64) Event { return Event{Kind: EventResize, X: width, Y: height} }

// interrupts reports whether ev cancels a running sort.
func (ev Event) interrupts() bool {
	switch ev.Kind {
	case EventClose:
		return true
	case EventButton:
		return ev.Button == ButtonReset || ev.Button == ButtonNewArray
	}
	return false
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventButton:
		return "button " + ev.Button.Label()
	case EventScroll:
		return fmt.Sprintf("scroll %+g", ev.Delta)
	case EventSubmit:
		return fmt.Sprintf("submit %q", ev.Text)
	case EventResize:
		return fmt.Sprintf("resize %gx%g", ev.X, ev.Y)
	case EventMouseDown, EventMouseUp, EventMouseMove, EventPan:
		return fmt.Sprintf("%s (%g, %g)", ev.Kind, ev.X, ev.Y)
	}
	return ev.Kind.String()
}
