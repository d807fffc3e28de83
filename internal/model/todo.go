package model

import (
	"slices"
	"strings"
)

// Todo is the domain model for a todo entry.
// ID and Text never change after creation; Completed only flips via Toggle.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TodoList owns an ordered, append-only collection of todos.
// It is the only thing allowed to mutate entries.
type TodoList struct {
	todos []Todo
	ids   IDSource
	// high is the largest id ever issued or seeded, deleted ones included.
	high int
}

// ListOption tunes a TodoList at construction.
type ListOption func(*TodoList)

// WithIDSource replaces the default sequential id generator.
func WithIDSource(src IDSource) ListOption {
	return func(l *TodoList) {
		if src != nil {
			l.ids = src
		}
	}
}

// WithTodos seeds the list. Entries with a duplicate id or blank text are dropped.
func WithTodos(todos ...Todo) ListOption {
	return func(l *TodoList) {
		for _, t := range todos {
			t.Text = strings.TrimSpace(t.Text)
			if t.Text == "" || l.index(t.ID) >= 0 {
				continue
			}
			l.todos = append(l.todos, t)
			l.high = max(l.high, t.ID)
		}
	}
}

func NewTodoList(opts ...ListOption) *TodoList {
	l := &TodoList{ids: Sequence(1)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a new pending todo. Blank text is a no-op and reports false.
func (l *TodoList) Add(text string) (Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Todo{}, false
	}
	t := Todo{ID: l.nextID(), Text: text}
	l.todos = append(l.todos, t)
	return t, true
}

// Toggle flips Completed on the matching entry. Unknown ids are a no-op.
func (l *TodoList) Toggle(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos[i].Completed = !l.todos[i].Completed
	return true
}

// Delete removes the matching entry and keeps the order of the rest.
func (l *TodoList) Delete(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.todos = slices.Delete(l.todos, i, i+1)
	return true
}

// Apply routes a typed intent to Add, Toggle or Delete.
func (l *TodoList) Apply(in Intent) bool {
	switch in.Kind {
	case IntentAdd:
		_, ok := l.Add(in.Text)
		return ok
	case IntentToggle:
		return l.Toggle(in.ID)
	case IntentDelete:
		return l.Delete(in.ID)
	}
	return false
}

// Todos returns a copy; callers cannot reach the owned slice.
func (l *TodoList) Todos() []Todo {
	return append(make([]Todo, 0, len(l.todos)), l.todos...)
}

func (l *TodoList) Len() int { return len(l.todos) }

func (l *TodoList) Get(id int) (Todo, bool) {
	i := l.index(id)
	if i < 0 {
		return Todo{}, false
	}
	return l.todos[i], true
}

// Stats counts completed and pending entries.
func (l *TodoList) Stats() (done, pending int) {
	return Stats(l.todos)
}

// Stats counts completed and pending entries of any slice.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *TodoList) index(id int) int {
	return slices.IndexFunc(l.todos, func(t Todo) bool { return t.ID == id })
}

// nextID asks the source first. Anything not above every id seen so far,
// deleted ones included, is replaced by high+1 so ids are never reused.
func (l *TodoList) nextID() int {
	id := l.ids()
	if id <= l.high {
		id = l.high + 1
	}
	l.high = id
	return id
}
