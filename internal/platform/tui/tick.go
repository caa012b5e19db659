// Package tui hosts the runner in a terminal through Bubble Tea, locally or
// over SSH via Wish. It owns the tick loop, key and mouse mapping, and the
// character canvas the world is drawn on.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// one frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
