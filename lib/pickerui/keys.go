// Copyright 2026 The Tickpick Authors
// SPDX-License-Identifier: Apache-2.0

package pickerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the picker control.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding // Click the option under the cursor.
	Open   key.Binding // Open the dropdown when it is closed.
	Close  key.Binding // Close the dropdown without clicking.
	Clear  key.Binding // Empty the selection (when clearing is allowed).
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Clear: key.NewBinding(
		key.WithKeys("backspace", "x"),
		key.WithHelp("x", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
