package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		action  core.Action
		command Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, CommandNone},
		{"a", keyRune('a'), core.ActionLeft, CommandNone},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, CommandNone},
		{"d", keyRune('d'), core.ActionRight, CommandNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionLaunch, CommandNone},
		{"p", keyRune('p'), core.ActionPause, CommandNone},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, CommandNone},
		{"r", keyRune('r'), core.ActionRestart, CommandNone},
		{"m", keyRune('m'), core.ActionNone, CommandMute},
		{"t", keyRune('t'), core.ActionNone, CommandTheme},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone, CommandScreenshot},
		{"?", keyRune('?'), core.ActionNone, CommandHelp},
		{"q", keyRune('q'), core.ActionQuit, CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, CommandQuit},
		{"unbound", keyRune('x'), core.ActionNone, CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, command := km.MapKey(tt.msg)
			if action != tt.action || command != tt.command {
				t.Errorf("MapKey(%q) = (%v, %d), expected (%v, %d)",
					tt.msg.String(), action, command, tt.action, tt.command)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if cmd := km.MapKeyToFrame(keyRune('a'), &frame); cmd != CommandNone {
		t.Errorf("movement key returned command %d", cmd)
	}
	if cmd := km.MapKeyToFrame(keyRune('m'), &frame); cmd != CommandMute {
		t.Errorf("m returned command %d", cmd)
	}
	if cmd := km.MapKeyToFrame(keyRune('q'), &frame); cmd != CommandQuit {
		t.Errorf("q returned command %d", cmd)
	}

	if !frame.Has(core.ActionLeft) {
		t.Error("left should be recorded")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("commands should not be recorded as actions")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("frame has %d actions, expected 1", len(frame.Actions))
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		ok    bool
		phase core.PointerPhase
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerPress},
		{"left drag", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, core.PointerDrag},
		{"release", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, core.PointerRelease},
		{"right press", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, core.PointerNone},
		{"wheel", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, core.PointerNone},
		{"hover", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, core.PointerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := km.MapMouse(tt.msg, 2)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if p.Phase != tt.phase {
				t.Errorf("phase = %d, expected %d", p.Phase, tt.phase)
			}
			if ok && (p.X != 4 || p.Y != 5) {
				t.Errorf("pointer at (%d, %d), expected (4, 5)", p.X, p.Y)
			}
		})
	}
}
