package model

import "fmt"

// IntentKind names the change an Intent asks for.
type IntentKind int

const (
	IntentAdd IntentKind = iota + 1
	IntentToggle
	IntentDelete
)

func (k IntentKind) String() string {
	switch k {
	case IntentAdd:
		return "add"
	case IntentToggle:
		return "toggle"
	case IntentDelete:
		return "delete"
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Intent is a requested change to a TodoList. Items emit them, the owner applies them.
type Intent struct {
	Kind IntentKind
	ID   int    // toggle, delete
	Text string // add
}

// Add, Toggle and Delete build the three kinds of intent.
func Add(text string) Intent { return Intent{Kind: IntentAdd, Text: text} }
func Toggle(id int) Intent   { return Intent{Kind: IntentToggle, ID: id} }
func Delete(id int) Intent   { return Intent{Kind: IntentDelete, ID: id} }
