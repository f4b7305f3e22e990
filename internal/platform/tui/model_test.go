package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/platformer/internal/actors"
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/runner"
)

func newSession(t *testing.T, schemas ...[]string) *runner.Session {
	t.Helper()
	parser := level.NewParser(actors.Dictionary(rand.New(rand.NewSource(1))))
	s, err := runner.NewSession(schemas, parser, nil, runner.WithMaxTicks(3), runner.WithMaxAttempts(1))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestModelTickAdvances(t *testing.T) {
	s := newSession(t, []string{"@ o"})
	m := NewModel(s, "test", config.SimulationConfig{TickRate: 60})

	next, cmd := m.Update(FrameMsg{})
	if cmd == nil {
		t.Error("running session should schedule the next tick")
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", s.Ticks())
	}
	if !strings.Contains(next.View(), "frame 1") {
		t.Errorf("view missing frame counter:\n%s", next.View())
	}
}

func TestModelPause(t *testing.T) {
	s := newSession(t, []string{"@ o"})
	var m tea.Model = NewModel(s, "test", config.SimulationConfig{TickRate: 60})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = m.Update(FrameMsg{})
	if s.Ticks() != 0 {
		t.Errorf("paused model advanced to %d ticks", s.Ticks())
	}
	if !strings.Contains(m.View(), "paused") {
		t.Errorf("view should say paused:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if s.Ticks() != 1 {
		t.Errorf("step key should advance one frame, ticks = %d", s.Ticks())
	}
}

func TestModelStopsTickingWhenDone(t *testing.T) {
	s := newSession(t, []string{"@ o"})
	var m tea.Model = NewModel(s, "test", config.SimulationConfig{TickRate: 60})

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = m.Update(FrameMsg{})
	}
	if !s.Done() {
		t.Fatal("session should end after MaxTicks with one attempt")
	}
	if cmd != nil {
		t.Error("finished session should not schedule ticks")
	}
	if !strings.Contains(m.View(), "run failed") {
		t.Errorf("view should show the summary:\n%s", m.View())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newSession(t, []string{"@o"}), "test", config.SimulationConfig{TickRate: 60})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSummary(t *testing.T) {
	out := Summary(runner.Result{
		Levels:    []runner.LevelResult{{Index: 0, Status: level.StatusWon, Attempts: 2}},
		Completed: true,
	})
	if !strings.Contains(out, "level 1: won after 2 attempt(s)") || !strings.Contains(out, "all levels cleared") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := frameInterval(config.SimulationConfig{TickRate: 50}); got != 20*time.Millisecond {
		t.Errorf("interval at 50fps = %v", got)
	}
	want := config.DefaultConfig().Simulation.FrameInterval()
	if got := frameInterval(config.SimulationConfig{}); got != want {
		t.Errorf("zero tick rate interval = %v, expected default %v", got, want)
	}
}
