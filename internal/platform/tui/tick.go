// Package tui provides a Bubble Tea viewer that plays a runner session in
// the terminal at the configured tick rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/platformer/internal/config"
)

// FrameMsg asks the viewer to advance the session by one frame.
type FrameMsg time.Time

// frameInterval is the wall-clock time between frames for sim, falling
// back to the default tick rate.
func frameInterval(sim config.SimulationConfig) time.Duration {
	if d := sim.FrameInterval(); d > 0 {
		return d
	}
	return config.DefaultConfig().Simulation.FrameInterval()
}

// nextFrame schedules the next FrameMsg after interval.
func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
