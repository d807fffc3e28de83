package tui

import "github.com/charmbracelet/bubbles/key"

type counterKeys struct {
	Increment key.Binding
	Decrement key.Binding
	Next      key.Binding
	Prev      key.Binding
	Press     key.Binding
	Quit      key.Binding
}

func newCounterKeys() counterKeys {
	return counterKeys{
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
		Next:      key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next control")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev control")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k counterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Next, k.Press, k.Quit}
}

func (k counterKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type todoKeys struct {
	Submit key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func newTodoKeys() todoKeys {
	return todoKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "delete")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k todoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Toggle, k.Delete, k.Quit}
}

func (k todoKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
