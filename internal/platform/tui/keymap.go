package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
)

// KeyMap defines the key bindings of a play session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Fire, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys and for the screenshot key, which the
// model handles itself.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// KeyTracker turns key presses into per-tick input frames.
// Terminals report presses but not releases, so a direction counts as held
// for holdTicks ticks after its last press; auto-repeat keeps it alive while
// the key is down. Pressing a direction releases its opposite at once.
type KeyTracker struct {
	holdTicks int
	tick      int
	expires   map[core.Action]int
	presses   []core.Action
}

// NewKeyTracker creates a tracker holding directions for holdTicks ticks.
func NewKeyTracker(holdTicks int) *KeyTracker {
	return &KeyTracker{
		holdTicks: max(1, holdTicks),
		expires:   make(map[core.Action]int),
	}
}

// Press records a key press.
func (t *KeyTracker) Press(a core.Action) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		delete(t.expires, opposite(a))
		t.expires[a] = t.tick + t.holdTicks
	case core.ActionFire, core.ActionQuit:
		t.presses = append(t.presses, a)
	}
}

// Frame returns the input of the current tick and advances to the next one.
func (t *KeyTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, until := range t.expires {
		if t.tick < until {
			in.Set(a)
		} else {
			delete(t.expires, a)
		}
	}
	for _, a := range t.presses {
		in.Push(a)
	}
	t.presses = t.presses[:0]
	t.tick++
	return in
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
