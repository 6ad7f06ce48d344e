package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJumpPressed},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJumpPressed},
		{"w", runeKey("w"), core.ActionJumpPressed},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDuckPressed},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestPressSynthesizesRelease(t *testing.T) {
	km := NewKeyMapper()
	frame := &core.InputFrame{}
	space := tea.KeyMsg{Type: tea.KeySpace}

	if cmd := km.Press(space, frame); cmd == nil {
		t.Fatal("Press(jump) returned no release command")
	}
	// Auto-repeat extends the hold without pressing again.
	km.Press(space, frame)
	if len(frame.Actions) != 1 || frame.Actions[0] != core.ActionJumpPressed {
		t.Fatalf("actions = %v, expected a single JumpPressed", frame.Actions)
	}
	if !km.Held(core.ActionJumpPressed) {
		t.Error("jump not held after press")
	}

	km.Release(releaseMsg{action: core.ActionJumpPressed, seq: 1}, frame)
	if len(frame.Actions) != 1 {
		t.Errorf("stale release pushed %v", frame.Actions)
	}

	km.Release(releaseMsg{action: core.ActionJumpPressed, seq: 2}, frame)
	if len(frame.Actions) != 2 || frame.Actions[1] != core.ActionJumpReleased {
		t.Errorf("actions = %v, expected JumpReleased after the press", frame.Actions)
	}
	if km.Held(core.ActionJumpPressed) {
		t.Error("jump still held after release")
	}

	// A second release for the same press is ignored.
	km.Release(releaseMsg{action: core.ActionJumpPressed, seq: 2}, frame)
	if len(frame.Actions) != 2 {
		t.Errorf("double release pushed %v", frame.Actions)
	}
}

func TestPressDuckRelease(t *testing.T) {
	km := NewKeyMapper()
	frame := &core.InputFrame{}

	km.Press(tea.KeyMsg{Type: tea.KeyDown}, frame)
	km.Release(releaseMsg{action: core.ActionDuckPressed, seq: 1}, frame)

	expected := []core.Action{core.ActionDuckPressed, core.ActionDuckReleased}
	if len(frame.Actions) != len(expected) {
		t.Fatalf("actions = %v, expected %v", frame.Actions, expected)
	}
	for i, a := range expected {
		if frame.Actions[i] != a {
			t.Errorf("action %d = %v, expected %v", i, frame.Actions[i], a)
		}
	}
}

func TestPressInstantActions(t *testing.T) {
	km := NewKeyMapper()
	frame := &core.InputFrame{}

	if cmd := km.Press(runeKey("p"), frame); cmd != nil {
		t.Error("Press(pause) returned a release command")
	}
	km.Press(runeKey("x"), frame)

	if len(frame.Actions) != 1 || frame.Actions[0] != core.ActionPause {
		t.Errorf("actions = %v, expected [Pause]", frame.Actions)
	}
}
