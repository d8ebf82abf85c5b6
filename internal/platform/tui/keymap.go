package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the YAML config so players can remap them.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Shot    key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(kb config.KeyBinding) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKeys(keys), desc))
	}
	return KeyMap{
		Left:    bind(kb.Left, "left"),
		Right:   bind(kb.Right, "right"),
		Rotate:  bind(kb.Rotate, "rotate"),
		Drop:    bind(kb.Drop, "soft drop"),
		Confirm: bind(kb.Confirm, "start/hard drop"),
		Pause:   bind(kb.Pause, "pause"),
		Back:    bind(kb.Back, "menu"),
		Quit:    bind(kb.Quit, "quit"),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBinding())
}

// helpKeys joins the first two key names for the help line.
func helpKeys(keys []string) string {
	names := make([]string, 0, 2)
	for _, k := range keys {
		if len(names) == 2 {
			break
		}
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Confirm, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Confirm, k.Pause, k.Back, k.Quit, k.Shot},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Rotate):
		return core.ActionUp
	case key.Matches(msg, k.Drop):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame marks the key's action as held in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	}
	frame.Set(action)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
// Menus use fixed keys so a broken config cannot lock the player out.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
