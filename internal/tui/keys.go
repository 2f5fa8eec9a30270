package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Commit key.Binding
	Erase  key.Binding
	Clear  key.Binding
	Encode key.Binding
	Decode key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "turn dial")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Commit: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "snap/set")),
		Erase:  key.NewBinding(key.WithKeys("backspace")),
		Clear:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear dial")),
		Encode: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "cipher")),
		Decode: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "decipher")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Commit, k.Clear, k.Encode, k.Decode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Commit, k.Clear},
		{k.Encode, k.Decode, k.Quit},
	}
}
