// Package tui provides the Bubble Tea shell for the snake engine.
// It handles the terminal UI loop, input mapping, and run recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after d. The engine decides d from its
// current speed, so the cadence changes as the game speeds up.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
