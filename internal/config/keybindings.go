// ABOUTME: Key bindings for the full-screen chat UI, overridable from ~/.grocer/keybindings.json
// ABOUTME: Keys use Bubble Tea's KeyMsg.String() names ("enter", "ctrl+c", "pgup")

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionSend       KeyAction = "send"
	ActionQuit       KeyAction = "quit"
	ActionScrollUp   KeyAction = "scrollUp"
	ActionScrollDown KeyAction = "scrollDown"
	ActionToggleHelp KeyAction = "toggleHelp"
	ActionClearInput KeyAction = "clearInput"
)

// Keybindings maps actions to the keys that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	return &Keybindings{Bindings: map[KeyAction][]string{
		ActionSend:       {"enter"},
		ActionQuit:       {"ctrl+c", "ctrl+d"},
		ActionScrollUp:   {"pgup", "shift+up"},
		ActionScrollDown: {"pgdown", "shift+down"},
		ActionToggleHelp: {"f1"},
		ActionClearInput: {"ctrl+u"},
	}}
}

// LoadKeybindings returns the defaults with every known action present in
// the file at path replacing its keys. A missing file yields the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	kb := NewKeybindings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keybindings: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for name, keys := range raw {
		action := KeyAction(name)
		if _, ok := kb.Bindings[action]; ok && len(keys) > 0 {
			kb.Bindings[action] = keys
		}
	}
	return kb, nil
}

// Action returns the action bound to key.
func (kb *Keybindings) Action(key string) (KeyAction, bool) {
	if kb == nil {
		return "", false
	}
	for action, keys := range kb.Bindings {
		for _, k := range keys {
			if k == key {
				return action, true
			}
		}
	}
	return "", false
}

// Keys returns the keys bound to action.
func (kb *Keybindings) Keys(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
