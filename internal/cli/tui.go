package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/render/term"
	"github.com/matzehuels/sortviz/pkg/sequence"
	"github.com/matzehuels/sortviz/pkg/session"
)

// panStep is how far one arrow key pans, in canvas units.
const panStep = 60

// chromeRows is the number of rows the header, control bar and footer take.
const chromeRows = 4

// Control bar styles
var (
	barKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	barLabelStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	barMutedStyle  = lipgloss.NewStyle().Foreground(colorDim)
	barPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

var buttonKeys = map[session.Button]string{
	session.ButtonBubble:    "1",
	session.ButtonInsertion: "2",
	session.ButtonSelection: "3",
	session.ButtonQuick:     "4",
	session.ButtonMerge:     "5",
	session.ButtonReset:     "r",
	session.ButtonNewArray:  "n",
	session.ButtonSpeedDown: "-",
	session.ButtonSpeedUp:   "+",
}

func (c *CLI) tuiCommand() *cobra.Command {
	var values string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Animate sorts interactively",
		Long: `Open an interactive session. Keys 1-5 start Bubble, Insertion, Selection,
Quick and Merge sort; r resets, n enters a new array, - and + change the speed.
Arrow keys, mouse drag and the wheel move around large call trees.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(-1)
			if err != nil {
				return err
			}
			seq, err := sequence.Parse(values, cfg.Input.MaxValues)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), loggerFromContext(cmd.Context()), cfg, seq)
		},
	}
	cmd.Flags().StringVar(&values, "values", defaultValues, "whitespace-separated integers to sort")
	return cmd
}

// frameMsg carries a presented frame from the controller goroutine.
type frameMsg session.Frame

// doneMsg reports that the controller stopped.
type doneMsg struct{}

// tuiModel is the bubbletea host: it forwards input to the controller's
// inbox and draws the frames the controller presents.
type tuiModel struct {
	inbox    *session.Inbox
	cancel   context.CancelFunc
	renderer *term.Renderer

	frame  session.Frame
	typing bool
	input  string
	// awaited is set once the controller confirmed it is waiting for input,
	// so frames still in flight from a cancelled sort keep the prompt open.
	awaited bool
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = session.Frame(msg)
		switch {
		case m.frame.State == session.StateAwaitingInput:
			m.typing, m.awaited = true, true
		case m.awaited:
			m.typing, m.awaited = false, false
		}
	case doneMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.renderer.Width = msg.Width
		m.renderer.Height = max(1, msg.Height-chromeRows)
		m.inbox.Send(m.canvasSize())
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

// canvasSize reports the drawable area in canvas units so the controller
// clamps against what the terminal actually shows.
func (m *tuiModel) canvasSize() session.Event {
	return session.Resize(m.renderer.Units(m.renderer.Width), float64(m.renderer.Height)*m.renderer.RowUnits)
}

func (m *tuiModel) quit() tea.Cmd {
	m.inbox.Send(session.Close())
	m.cancel()
	return tea.Quit
}

func (m *tuiModel) key(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.typing {
		switch msg.Type {
		case tea.KeyEnter:
			m.inbox.Send(session.Submit(strings.TrimSpace(m.input)))
			m.input = ""
		case tea.KeyBackspace:
			if m.input != "" {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyEsc:
			m.typing, m.awaited = false, false
			m.input = ""
			m.inbox.Send(session.Press(session.ButtonReset))
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
		return nil
	}

	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "1", "2", "3", "4", "5":
		m.inbox.Send(session.Press(session.ButtonBubble + session.Button(msg.String()[0]-'1')))
	case "r":
		m.inbox.Send(session.Press(session.ButtonReset))
	case "n":
		m.typing = true
		m.input = ""
		m.inbox.Send(session.Press(session.ButtonNewArray))
	case "-", "_":
		m.inbox.Send(session.Press(session.ButtonSpeedDown))
	case "+", "=":
		m.inbox.Send(session.Press(session.ButtonSpeedUp))
	case "left", "h":
		m.inbox.Send(session.Pan(-panStep, 0))
	case "right", "l":
		m.inbox.Send(session.Pan(panStep, 0))
	case "up", "k":
		m.inbox.Send(session.Scroll(1))
	case "down", "j":
		m.inbox.Send(session.Scroll(-1))
	}
	return nil
}

// mouse converts terminal cells to canvas units before forwarding.
func (m *tuiModel) mouse(msg tea.MouseMsg) {
	x := m.renderer.Units(msg.X)
	y := float64(msg.Y) * m.renderer.RowUnits
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.inbox.Send(session.Scroll(1))
	case msg.Button == tea.MouseButtonWheelDown:
		m.inbox.Send(session.Scroll(-1))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.inbox.Send(session.MouseDown(x, y))
	case msg.Action == tea.MouseActionRelease:
		m.inbox.Send(session.MouseUp(x, y))
	case msg.Action == tea.MouseActionMotion:
		m.inbox.Send(session.MouseMove(x, y))
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder

	title := m.frame.Scene.Title
	if title == "" {
		title = appName
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(barMutedStyle.Render(fmt.Sprintf("  %s · delay %dms", m.frame.State, m.frame.DelayMs)))
	b.WriteString("\n")
	b.WriteString(controlBar())
	b.WriteString("\n")
	b.WriteString(m.renderer.Scene(m.frame.Scene, m.frame.OffsetX, m.frame.OffsetY))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *tuiModel) footer() string {
	switch {
	case m.frame.Message != "":
		return styleIconError.Render(iconError) + " " + m.frame.Message + barMutedStyle.Render("  (enter a new array)")
	case m.typing || m.frame.State == session.StateAwaitingInput:
		return barPromptStyle.Render("values: ") + m.input + barMutedStyle.Render("▏ enter to apply, esc to cancel")
	default:
		return barMutedStyle.Render("←/→ pan · ↑/↓ scroll · drag to pan · q quit")
	}
}

// controlBar renders every button with its key.
func controlBar() string {
	parts := make([]string, len(session.Buttons))
	for i, btn := range session.Buttons {
		parts[i] = barKeyStyle.Render("["+buttonKeys[btn]+"]") + " " + barLabelStyle.Render(btn.Label())
	}
	return strings.Join(parts, barMutedStyle.Render("  "))
}

// runTUI starts the controller on its own goroutine and hosts it in a
// bubbletea program until either side quits.
func runTUI(ctx context.Context, logger *log.Logger, cfg *config.Config, seq sequence.Sequence) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := session.NewInbox(0)
	model := &tuiModel{
		inbox:    inbox,
		cancel:   cancel,
		renderer: term.New(80, 20, cfg.LayoutParams().Metrics),
	}
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	ctrl, err := session.New(session.Options{
		Config: cfg,
		Logger: logger,
		Inbox:  inbox,
		Values: seq,
		Presenter: session.PresenterFunc(func(f session.Frame) {
			prog.Send(frameMsg(f))
		}),
	})
	if err != nil {
		return err
	}
	inbox.Send(model.canvasSize())

	// Log lines would tear the alt screen; rejected input is shown in the
	// footer instead.
	level := logger.GetLevel()
	logger.SetLevel(max(level, log.ErrorLevel))
	defer logger.SetLevel(level)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx)
		prog.Send(doneMsg{})
	}()

	_, runErr := prog.Run()
	cancel()
	ctrlErr := <-done
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	if ctrlErr != nil && !errors.Is(ctrlErr, context.Canceled) {
		return ctrlErr
	}
	return nil
}
