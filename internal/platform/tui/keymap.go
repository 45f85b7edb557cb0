package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Retry key.Binding
	Mute  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Retry, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Retry, k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
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
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "retry"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// HeldKeys emulates key-up events for terminals, which only report presses.
// A press holds its direction for a fixed number of ticks; terminal key
// repeat keeps refreshing it while the key is down. Pressing the opposite
// direction releases the first one at once.
type HeldKeys struct {
	holdTicks int
	left      int
	right     int
}

// NewHeldKeys creates a tracker that holds each press for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{holdTicks: holdTicks}
}

// Press registers a key press. Non-directional actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	}
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.left, h.right = 0, 0
}

// Frame returns the input for the next tick and ages the holds.
func (h *HeldKeys) Frame() core.InputFrame {
	in := core.NewInputFrame()
	if h.left > 0 {
		in.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		in.Set(core.ActionRight)
		h.right--
	}
	return in
}
