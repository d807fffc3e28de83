package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
)

// IntentMsg carries a requested change from an Item up to the list owner.
type IntentMsg struct {
	Intent model.Intent
}

func intentCmd(in model.Intent) tea.Cmd {
	return func() tea.Msg { return IntentMsg{Intent: in} }
}

// Item renders one todo and forwards toggle/delete as intents.
// It holds a copy of the entry and never changes it.
type Item struct {
	model.Todo
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.Text }

func (i Item) Toggle() tea.Cmd { return intentCmd(model.Toggle(i.ID)) }
func (i Item) Delete() tea.Cmd { return intentCmd(model.Delete(i.ID)) }

// View is a single row: cursor, checkbox, text, delete control.
func (i Item) View(selected bool, deleteLabel string) string {
	box := mutedStyle.Render(boxUnchecked)
	text := i.Text
	if i.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = selectedStyle.Render(">") + " "
	}
	return fmt.Sprintf("%s%s %s  %s", prefix, box, text, button(deleteLabel, false))
}

// itemDelegate draws rows for bubbles/list and maps row keys to intents.
type itemDelegate struct {
	keys        todoKeys
	deleteLabel string
	focused     bool
}

func (d itemDelegate) Height() int  { return 1 }
func (d itemDelegate) Spacing() int { return 0 }

func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused {
		return nil
	}
	it, ok := m.SelectedItem().(Item)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, d.keys.Toggle):
		return it.Toggle()
	case key.Matches(km, d.keys.Delete):
		return it.Delete()
	}
	return nil
}

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	fmt.Fprint(w, it.View(d.focused && index == m.Index(), d.deleteLabel))
}
