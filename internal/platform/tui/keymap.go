package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// holdFrames is how many simulation frames a movement key press keeps
// thrusting. Terminals report no key-up, so a press arms a short hold window
// that each repeat refreshes.
const holdFrames = 8

// KeyMapper translates Bubble Tea key messages to flight input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MoveDelta maps a key to a thrust direction. The second result is false for
// non-movement keys.
func (km *KeyMapper) MoveDelta(msg tea.KeyMsg) (core.Vec2, bool) {
	switch msg.String() {
	case "w", "up":
		return core.Vec2{Y: -1}, true
	case "s", "down":
		return core.Vec2{Y: 1}, true
	case "a", "left":
		return core.Vec2{X: -1}, true
	case "d", "right":
		return core.Vec2{X: 1}, true
	}
	return core.Vec2{}, false
}

// IsFire reports whether the key fires the weapon.
func (km *KeyMapper) IsFire(msg tea.KeyMsg) bool {
	return msg.String() == " "
}

// IsQuit reports whether the key quits the client.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	s := msg.String()
	return s == "ctrl+c" || s == "q"
}

// DockedKeyMap defines the key bindings for the docked station view.
type DockedKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Buy     key.Binding
	Sell    key.Binding
	Cargo   key.Binding
	Shield  key.Binding
	Undock  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DockedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Sell, k.Cargo, k.Shield, k.Undock}
}

// FullHelp returns key bindings for the full help view.
func (k DockedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Buy, k.Sell},
		{k.Cargo, k.Shield, k.Undock, k.Quit},
	}
}

// DefaultDockedKeyMap returns default key bindings for the docked view.
func DefaultDockedKeyMap() DockedKeyMap {
	return DockedKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next item"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy 1"),
		),
		Sell: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sell 1"),
		),
		Cargo: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cargo upgrade"),
		),
		Shield: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "shield upgrade"),
		),
		Undock: key.NewBinding(
			key.WithKeys("u", "esc"),
			key.WithHelp("u", "undock"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
