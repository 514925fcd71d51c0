package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/observability"
	"github.com/matzehuels/sortviz/pkg/sequence"
	"github.com/matzehuels/sortviz/pkg/sorts"
	"github.com/matzehuels/sortviz/pkg/viewport"
)

// State is the controller's position in the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateSorting
	StateSorted
	StateAwaitingInput
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateSorting:       "sorting",
	StateSorted:        "sorted",
	StateAwaitingInput: "awaiting input",
}

func (s State) String() string { return stateNames[s] }

// ErrAlreadySorted is returned by StartSort while the sorted latch is set.
var ErrAlreadySorted = errors.New(errors.ErrCodeInvalidInput, "sequence already sorted; reset or enter a new array first")

// Frame is what the controller hands to its presenter. Scene is a snapshot
// the presenter may keep.
type Frame struct {
	Scene            anim.Scene
	OffsetX, OffsetY float64
	DelayMs          int
	State            State
	// Message is a one-line status, e.g. why a submitted array was rejected.
	Message string
}

// Presenter is the rendering collaborator. Present is called on the
// controller goroutine and must not block for long.
type Presenter interface {
	Present(Frame)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Frame)

// Present calls f(frame).
func (f PresenterFunc) Present(frame Frame) { f(frame) }

// Result summarises one sort run.
type Result struct {
	RunID   string
	Kind    sorts.Kind
	Status  sorts.Status
	Frames  int
	Elapsed time.Duration
}

// Options configures a Controller.
type Options struct {
	Config    *config.Config // nil uses config.Default()
	Logger    *log.Logger    // nil discards logs
	Presenter Presenter      // nil presents nothing
	Inbox     *Inbox         // nil creates a private inbox
	Values    sequence.Sequence
}

// Controller owns a sort session. Its methods must be called from a single
// goroutine: the one running Run, or the caller itself when Run is unused.
type Controller struct {
	cfg       *config.Config
	logger    *log.Logger
	presenter Presenter
	inbox     *Inbox

	params calltree.Params
	view   *viewport.State
	delay  *anim.Delay
	pacer  *anim.Pacer

	original sequence.Sequence
	working  sequence.Sequence
	tree     *calltree.Tree
	kind     sorts.Kind
	state    State
	message  string

	// live is the scene being shown, re-presented after navigation.
	live anim.Scene
	// frames counts frames of the current run.
	frames int
	// pending is the command that interrupted the current run.
	pending *Event
	closed  bool
}

// New returns a controller for opts.Values, which must not be empty.
func New(opts Options) (*Controller, error) {
	if len(opts.Values) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySequence, "a session needs at least one value")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := errors.ValidateSequenceLength(len(opts.Values), cfg.Input.MaxValues); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	inbox := opts.Inbox
	if inbox == nil {
		inbox = NewInbox(0)
	}
	delay := cfg.Delay()
	c := &Controller{
		cfg:       cfg,
		logger:    logger,
		presenter: opts.Presenter,
		inbox:     inbox,
		params:    cfg.LayoutParams(),
		view:      viewport.New(cfg.ViewportLimits()),
		delay:     delay,
		pacer:     anim.NewPacer(delay, cfg.HoldExtra()),
		original:  opts.Values.Clone(),
		working:   opts.Values.Clone(),
	}
	c.live = c.idleScene()
	return c, nil
}

// Inbox returns the queue the input collaborator sends to.
func (c *Controller) Inbox() *Inbox { return c.inbox }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Values returns a copy of the working sequence.
func (c *Controller) Values() sequence.Sequence { return c.working.Clone() }

// Original returns a copy of the snapshot restored on reset.
func (c *Controller) Original() sequence.Sequence { return c.original.Clone() }

// Tree returns the call tree of the last tree-mode run, or nil.
func (c *Controller) Tree() *calltree.Tree { return c.tree }

// Viewport returns the viewport state.
func (c *Controller) Viewport() *viewport.State { return c.view }

// DelayMs returns the current frame delay.
func (c *Controller) DelayMs() int { return c.delay.Millis() }

// Run presents the initial scene and handles events until Close arrives or
// ctx is done. A closed session returns nil.
func (c *Controller) Run(ctx context.Context) error {
	c.present()
	for !c.closed {
		ev, err := c.next(ctx)
		if err != nil {
			return err
		}
		c.Handle(ctx, ev)
	}
	return nil
}

func (c *Controller) next(ctx context.Context) (Event, error) {
	if c.pending != nil {
		ev := *c.pending
		c.pending = nil
		return ev, nil
	}
	return c.inbox.Wait(ctx)
}

// Handle applies one event outside of a sort. Sort buttons run the sort to
// completion or cancellation before Handle returns.
func (c *Controller) Handle(ctx context.Context, ev Event) {
	c.logger.Debug("event", "event", ev, "state", c.state)
	switch ev.Kind {
	case EventClose:
		c.closed = true
	case EventSubmit:
		if err := c.NewArray(ev.Text); err != nil {
			c.logger.Warn("rejected input", "err", errors.UserMessage(err))
		}
	case EventButton:
		c.press(ctx, ev.Button)
	default:
		if c.navigate(ev) {
			c.present()
		}
	}
}

func (c *Controller) press(ctx context.Context, b Button) {
	switch b {
	case ButtonReset:
		c.Reset()
	case ButtonNewArray:
		if err := c.NewArray(""); err != nil {
			c.logger.Warn("new array", "err", err)
		}
	case ButtonSpeedDown, ButtonSpeedUp:
		c.adjustSpeed(b)
		c.present()
	default:
		if b < ButtonBubble || b > ButtonMerge {
			return
		}
		kind := sorts.Kinds[b-ButtonBubble]
		if _, err := c.StartSort(ctx, kind); err != nil {
			c.logger.Debug("sort not started", "algo", kind, "err", errors.UserMessage(err))
		}
	}
}

// AdjustDelay changes the frame delay by delta milliseconds, clamped to the
// configured range, and returns the new delay.
func (c *Controller) AdjustDelay(delta int) int {
	ms := c.delay.Adjust(delta)
	c.logger.Debug("delay", "ms", ms)
	return ms
}

// adjustSpeed maps the speed buttons to delay steps: slower means a longer
// delay.
func (c *Controller) adjustSpeed(b Button) {
	step := c.cfg.Animation.StepMs
	if b == ButtonSpeedUp {
		step = -step
	}
	c.AdjustDelay(step)
}

// navigate applies a pan or scroll event and reports whether it changed
// anything worth presenting.
func (c *Controller) navigate(ev Event) bool {
	switch ev.Kind {
	case EventMouseDown:
		c.view.BeginDrag(ev.X, ev.Y)
		return false
	case EventMouseUp:
		c.view.EndDrag()
		return false
	case EventMouseMove:
		if !c.view.Dragging() {
			return false
		}
		c.view.DragTo(ev.X, ev.Y)
	case EventScroll:
		c.view.ScrollBy(ev.Delta)
	case EventPan:
		c.view.PanBy(ev.X, ev.Y)
	case EventResize:
		if ev.X <= 0 || ev.Y <= 0 {
			return false
		}
		c.view.Resize(ev.X, ev.Y)
	default:
		return false
	}
	return true
}

// Reset restores the original sequence, discards the tree, recentres the
// viewport and clears the sorted latch.
func (c *Controller) Reset() {
	c.restore()
	c.message = ""
	c.logger.Debug("reset", "values", c.working)
	c.present()
}

// NewArray replaces the sequence with the integers in text. Empty text
// switches to StateAwaitingInput until a line is submitted. On a parse
// error the session keeps its current sequence and the error is shown.
func (c *Controller) NewArray(text string) error {
	c.restore()
	if text == "" {
		c.state = StateAwaitingInput
		c.message = ""
		c.present()
		return nil
	}
	seq, err := sequence.Parse(text, c.cfg.Input.MaxValues)
	if err != nil {
		c.state = StateAwaitingInput
		c.message = errors.UserMessage(err)
		c.present()
		return err
	}
	c.original = seq
	c.working = seq.Clone()
	c.state = StateIdle
	c.message = ""
	c.live = c.idleScene()
	c.logger.Info("new array", "size", len(seq))
	c.present()
	return nil
}

// StartSort runs kind over the working sequence until it completes or is
// cancelled. A cancelled run restores the original sequence; the command
// that cancelled it is applied next by Run.
func (c *Controller) StartSort(ctx context.Context, kind sorts.Kind) (Result, error) {
	switch c.state {
	case StateSorted:
		return Result{}, ErrAlreadySorted
	case StateSorting:
		return Result{}, errors.New(errors.ErrCodeInternal, "a sort is already running")
	}

	res := Result{RunID: uuid.NewString(), Kind: kind}
	logger := c.logger.With("run", res.RunID[:8], "algo", string(kind))

	c.restore()
	c.kind = kind
	c.state = StateSorting
	c.message = ""
	c.frames = 0
	target := sorts.Target{Values: c.working}
	if kind.Mode() == anim.ModeTree {
		c.tree = calltree.New(c.working)
		c.relayout(c.tree)
		target.Tree = c.tree
	}

	logger.Info("sort started", "size", len(c.working))
	observability.Sort().OnSortStart(ctx, string(kind), len(c.working))
	start := time.Now()

	env := sorts.Env{Emitter: anim.EmitterFunc(c.emit), Relayout: c.relayout}
	status, err := sorts.Sort(ctx, env, kind, target)
	res.Status = status
	res.Frames = c.frames
	res.Elapsed = time.Since(start)
	if err != nil {
		c.restore()
		c.present()
		return res, err
	}

	cancelled := status == sorts.Cancelled
	observability.Sort().OnSortComplete(ctx, string(kind), res.Frames, res.Elapsed, cancelled)
	if cancelled {
		c.restore()
		logger.Info("sort cancelled", "frames", res.Frames, "elapsed", res.Elapsed.Round(time.Millisecond))
	} else {
		if c.tree != nil {
			c.working = c.tree.Root.Data.Clone()
		}
		c.state = StateSorted
		c.live = c.idleScene()
		logger.Info("sort complete", "frames", res.Frames, "elapsed", res.Elapsed.Round(time.Millisecond))
	}
	if !c.closed {
		c.present()
	}
	return res, nil
}

// restore puts the session back on the original snapshot with no tree.
func (c *Controller) restore() {
	c.working = c.original.Clone()
	if c.tree != nil {
		c.tree.Discard()
		c.tree = nil
	}
	c.view.Reset()
	c.state = StateIdle
	c.live = c.idleScene()
}

func (c *Controller) relayout(t *calltree.Tree) {
	c.view.SetExtents(calltree.Layout(t.Root, c.params))
}

func (c *Controller) idleScene() anim.Scene {
	if c.tree != nil {
		return anim.Scene{Mode: anim.ModeTree, Title: c.kind.Title(), Tree: c.tree}
	}
	return anim.Scene{Mode: anim.ModeBars, Title: c.kind.Title(), Values: c.working}
}

func (c *Controller) present() {
	if c.presenter == nil {
		return
	}
	c.presenter.Present(Frame{
		Scene:   c.live.Snapshot(),
		OffsetX: c.view.OffsetX,
		OffsetY: c.view.OffsetY,
		DelayMs: c.delay.Millis(),
		State:   c.state,
		Message: c.message,
	})
}
