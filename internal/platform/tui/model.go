package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tvstatic/internal/app"
	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/menu"
)

// Rows reserved below the screen for the short and full help bar.
const (
	shortHelpRows = 1
	fullHelpRows  = 3
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure the terminal frontend.
type Options struct {
	Width  int // Initial size in cells, replaced on the first resize
	Height int
	FPS    int
	Mouse  bool
}

// Model is the Bubble Tea model driving an app.Controller.
type Model struct {
	ctrl   *app.Controller
	screen *core.Screen
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	fps    int
	width  int // Terminal size in cells
	height int

	inputFrame core.InputFrame
	click      *click
	focus      int // Focused pause menu control
	quitting   bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given controller.
func NewModel(ctrl *app.Controller, opts Options, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		ctrl:       ctrl,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		fps:        opts.FPS,
		width:      opts.Width,
		height:     opts.Height,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(m.screenSize())
	return m
}

// screenSize returns the cells left for the screen above the help bar.
func (m Model) screenSize() (int, int) {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	return max(m.width, 1), max(m.height-rows, 1)
}

// controls is the number of focusable pause menu controls: every button
// plus the spinner.
func controls() int {
	return len(menu.Buttons()) + 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.screenSize())
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse records left clicks in screen pixels, aimed at cell centers.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.click = &click{
		x: msg.X*core.CellWidth + core.CellWidth/2,
		y: msg.Y*core.CellHeight + core.CellHeight/2,
	}
	return m, nil
}

// handleResize processes terminal resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(m.screenSize())
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick applies the collected input and renders one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame.Clone()
	m.ctrl.HandleInput(in)

	w := &widgets{screen: m.screen}
	if m.ctrl.Paused() {
		n := controls()
		step := in.Count(core.ActionMenuNext) - in.Count(core.ActionMenuPrev)
		m.focus = ((m.focus+step)%n + n) % n
		w.focus = m.focus
		w.confirm = in.Has(core.ActionConfirm)
		w.click = m.click
		w.left = in.Count(core.ActionAspectDown)
		w.right = in.Count(core.ActionAspectUp)
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	m.click = nil

	if err := m.ctrl.Frame(m.screen, w); err != nil {
		m.err = fmt.Errorf("tui: %w", err)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.fps)
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current screen and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctrl *app.Controller, opts Options, logger *log.Logger) error {
	model := NewModel(ctrl, opts, logger)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()} // Use alternate screen buffer
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)

	logger.Info("starting terminal frontend", "cols", opts.Width, "rows", opts.Height, "fps", opts.FPS, "mouse", opts.Mouse)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
