package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/render"
	"github.com/vovakirdan/platformer/internal/runner"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

// Model is the Bubble Tea model that plays a session.
type Model struct {
	session  *runner.Session
	title    string
	interval time.Duration
	palette  render.Palette
	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
}

// NewModel creates a viewer for session, advancing one frame per
// sim.FrameInterval.
func NewModel(session *runner.Session, title string, sim config.SimulationConfig) Model {
	return Model{
		session:  session,
		title:    title,
		interval: frameInterval(sim),
		palette:  render.DefaultPalette(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return nextFrame(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.session.Step()
		}
	}
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.session.Step()
	}
	if m.session.Done() {
		// Keep the final screen up until the user quits.
		return m, nil
	}
	return m, nextFrame(m.interval)
}

// View renders the current level.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if lvl := m.session.Level(); lvl != nil {
		state := lvl.Status().String()
		if m.paused {
			state += ", paused"
		}
		b.WriteString(infoStyle.Render(fmt.Sprintf("level %d/%d  attempt %d  frame %d  %s",
			m.session.Index()+1, m.session.Levels(), m.session.Attempt(), m.session.Ticks(), state)))
		b.WriteString("\n")
		b.WriteString(frameStyle.Render(m.palette.Paint(render.Draw(lvl, render.DefaultSymbols))))
	} else {
		b.WriteString("\n")
		b.WriteString(Summary(m.session.Result()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Summary formats a run result, one line per level.
func Summary(res runner.Result) string {
	var b strings.Builder
	for _, lr := range res.Levels {
		fmt.Fprintf(&b, "level %d: %s after %d attempt(s)\n", lr.Index+1, lr.Status, lr.Attempts)
	}
	if res.Completed {
		b.WriteString(titleStyle.Render("all levels cleared"))
	} else {
		b.WriteString(infoStyle.Render("run failed"))
	}
	return b.String()
}

// Run starts the Bubble Tea program and returns the session result when the
// user quits.
func Run(session *runner.Session, title string, sim config.SimulationConfig) (runner.Result, error) {
	p := tea.NewProgram(
		NewModel(session, title, sim),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return session.Result(), err
}
