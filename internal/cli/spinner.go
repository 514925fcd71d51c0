package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sortviz/pkg/sorts"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerTick is how often the spinner line is redrawn.
const spinnerTick = 80 * time.Millisecond

// Spinner shows a single status line with elapsed time while a Graphviz
// render runs. It stops on Stop or when its parent context ends.
type Spinner struct {
	out    io.Writer
	label  string
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	start   time.Time
	started bool
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	elapsed time.Duration

	mu    sync.Mutex
	width int // printed width of the last line, for clearing
}

// renderLabel describes a call tree render for the spinner line.
func renderLabel(kind sorts.Kind, nodes, frames int, format string) string {
	return fmt.Sprintf("Rendering %s call tree (%d nodes, %d frames) as %s", kind.Title(), nodes, frames, format)
}

func newSpinner(ctx context.Context, out io.Writer, label string) *Spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		out:     out,
		label:   label,
		parent:  ctx,
		ctx:     spinCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins drawing. It must be called at most once.
func (s *Spinner) Start() {
	s.start = time.Now()
	s.started = true
	go s.spin()
}

func (s *Spinner) spin() {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.draw(spinnerFrames[i%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	line := styleIconSpinner.Render(frame) + " " +
		StyleDim.Render(fmt.Sprintf("%s %.1fs", s.label, time.Since(s.start).Seconds()))
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s", line)
	s.width = max(s.width, lipgloss.Width(line))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

// Stop ends the animation, clears the line and returns how long the
// spinner ran. Later calls return the same duration.
func (s *Spinner) Stop() time.Duration {
	s.once.Do(func() {
		close(s.done)
		if s.started {
			<-s.stopped
			s.elapsed = time.Since(s.start)
		}
		s.clearLine()
		s.cancel()
	})
	return s.elapsed
}

// Fail stops the spinner and prints msg as an error line.
func (s *Spinner) Fail(msg string) {
	s.Stop()
	fmt.Fprintln(s.out, styleIconError.Render(iconError)+" "+msg)
}

// Cancelled reports whether the parent context ended, as opposed to the
// spinner being stopped normally.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
