package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timeless/internal/core"
)

// KeyMap defines the key bindings of the runner.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	RunLeft  key.Binding
	RunRight key.Binding
	Jump     key.Binding
	Fire     key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.RunRight, k.Fire, k.Reset, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight},
		{k.Jump, k.Fire},
		{k.Reset, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("A", "shift+left"),
			key.WithHelp("A/S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("D", "shift+right"),
			key.WithHelp("D/S-→", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", "up", " "),
			key.WithHelp("w/↑/space", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "j"),
			key.WithHelp("f/j", "fire"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to the actions it triggers.
// A run binding yields both the direction and the run modifier.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, km.keys.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}
	case key.Matches(msg, km.keys.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}
	case key.Matches(msg, km.keys.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, km.keys.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, km.keys.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, km.keys.Fire):
		return []core.Action{core.ActionFire}
	case key.Matches(msg, km.keys.Reset):
		return []core.Action{core.ActionReset}
	}
	return nil
}
