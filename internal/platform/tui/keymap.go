package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Command is a platform-level request that never reaches the game.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandMute
	CommandTheme
	CommandScreenshot
	CommandHelp
)

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Mute       key.Binding
	Theme      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Restart},
		{k.Mute, k.Theme, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to either a game action or a platform command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	k := km.Keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, CommandQuit
	case key.Matches(msg, k.Mute):
		return core.ActionNone, CommandMute
	case key.Matches(msg, k.Theme):
		return core.ActionNone, CommandTheme
	case key.Matches(msg, k.Screenshot):
		return core.ActionNone, CommandScreenshot
	case key.Matches(msg, k.Help):
		return core.ActionNone, CommandHelp
	case key.Matches(msg, k.Left):
		return core.ActionLeft, CommandNone
	case key.Matches(msg, k.Right):
		return core.ActionRight, CommandNone
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch, CommandNone
	case key.Matches(msg, k.Pause):
		return core.ActionPause, CommandNone
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, CommandNone
	}

	return core.ActionNone, CommandNone
}

// MapKeyToFrame records the key's action in frame and returns any platform command.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) Command {
	action, cmd := km.MapKey(msg)
	if cmd == CommandNone && action != core.ActionNone {
		frame.Set(action)
	}
	return cmd
}

// MapMouse translates a left-button mouse event to a pointer.
// top is the screen row where the game area starts.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, top int) (core.Pointer, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.Pointer{}, false
	}

	p := core.Pointer{X: msg.X, Y: msg.Y - top}
	switch msg.Action {
	case tea.MouseActionPress:
		p.Phase = core.PointerPress
	case tea.MouseActionMotion:
		p.Phase = core.PointerDrag
	case tea.MouseActionRelease:
		p.Phase = core.PointerRelease
	default:
		return core.Pointer{}, false
	}
	return p, true
}
