package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// KeyMap holds the terminal key bindings.
// It implements help.KeyMap so the bindings render in the help line.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Down       key.Binding
	Restart    key.Binding
	Fullscreen key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, with WASD and vim
// keys as alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Fullscreen, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Down},
		{k.Restart, k.Fullscreen, k.Quit},
	}
}

// GameKey translates a key message into the runner's raw key.
func (k KeyMap) GameKey(msg tea.KeyMsg) runner.Key {
	switch {
	case key.Matches(msg, k.Left):
		return runner.KeyLeft
	case key.Matches(msg, k.Right):
		return runner.KeyRight
	case key.Matches(msg, k.Jump):
		return runner.KeyUp
	case key.Matches(msg, k.Down):
		return runner.KeyDown
	case key.Matches(msg, k.Restart):
		return runner.KeyEnter
	}
	return runner.KeyUnknown
}
