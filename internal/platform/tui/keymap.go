package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Terminals report presses only. A held key is considered released once no
// press or auto-repeat has arrived for its hold window. Duck uses a window
// longer than the usual repeat delay so holding it keeps the dino low.
const (
	jumpHoldWindow = 150 * time.Millisecond
	duckHoldWindow = 600 * time.Millisecond
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Jump    key.Binding
	Duck    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Debug   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck},
		{k.Pause, k.Restart, k.Debug, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down", "duck"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hit boxes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// releaseMsg fires when a held key's window expires.
type releaseMsg struct {
	action core.Action
	seq    int
}

type heldKey struct {
	held bool
	seq  int
}

// KeyMapper translates Bubble Tea key messages to game actions and
// synthesizes the release half of jump and duck.
type KeyMapper struct {
	Keys KeyMap
	held map[core.Action]*heldKey
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Keys: DefaultKeyMap(),
		held: map[core.Action]*heldKey{
			core.ActionJumpPressed: {},
			core.ActionDuckPressed: {},
		},
	}
}

// MapKey translates a key message to a single action.
// Jump and duck map to their press actions; quit and debug are handled by the host.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Keys.Jump):
		return core.ActionJumpPressed
	case key.Matches(msg, km.Keys.Duck):
		return core.ActionDuckPressed
	case key.Matches(msg, km.Keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.Keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Press records a key press into frame. Auto-repeats of a held key extend the
// hold instead of pressing again. The returned command delivers the release.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) tea.Cmd {
	action := km.MapKey(msg)
	h, holdable := km.held[action]
	if !holdable {
		frame.Push(action)
		return nil
	}

	if !h.held {
		frame.Push(action)
		h.held = true
	}
	h.seq++
	rm := releaseMsg{action: action, seq: h.seq}
	window := jumpHoldWindow
	if action == core.ActionDuckPressed {
		window = duckHoldWindow
	}
	return tea.Tick(window, func(time.Time) tea.Msg { return rm })
}

// Release pushes the release action if msg is the latest one for its key.
func (km *KeyMapper) Release(msg releaseMsg, frame *core.InputFrame) {
	h, ok := km.held[msg.action]
	if !ok || !h.held || h.seq != msg.seq {
		return
	}
	h.held = false
	frame.Push(releaseOf(msg.action))
}

// Held reports whether the key for a press action is currently held.
func (km *KeyMapper) Held(action core.Action) bool {
	h, ok := km.held[action]
	return ok && h.held
}

func releaseOf(a core.Action) core.Action {
	switch a {
	case core.ActionJumpPressed:
		return core.ActionJumpReleased
	case core.ActionDuckPressed:
		return core.ActionDuckReleased
	default:
		return core.ActionNone
	}
}
