package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

// Owner holds the authoritative collection. *model.TodoList is one;
// callers can pass their own to run the list in controlled mode.
type Owner interface {
	Todos() []model.Todo
	Apply(model.Intent) bool
}

// TodoOptions are the labels and limits of the todo widget.
type TodoOptions struct {
	Title       string
	Placeholder string
	Empty       string
	AddLabel    string
	DeleteLabel string
	CharLimit   int
	MaxRows     int
}

func DefaultTodoOptions() TodoOptions {
	return TodoOptions{
		Title:       "할일 목록",
		Placeholder: "새로운 할일을 입력하세요",
		Empty:       "할 일이 없습니다.",
		AddLabel:    "추가",
		DeleteLabel: "삭제",
		CharLimit:   200,
		MaxRows:     10,
	}
}

type focusArea int

const (
	focusInput focusArea = iota
	focusAdd
	focusRows
)

// TodoListModel is the todo widget. It owns the input buffer and is the
// only place intents get applied to the collection.
type TodoListModel struct {
	owner Owner
	opts  TodoOptions
	input textinput.Model
	rows  list.Model
	focus focusArea
	keys  todoKeys
	help  help.Model
	log   *slog.Logger
}

// NewTodoList builds the widget. A nil owner gets a fresh private list.
func NewTodoList(opts TodoOptions, owner Owner, log *slog.Logger) TodoListModel {
	def := DefaultTodoOptions()
	if opts.CharLimit <= 0 {
		opts.CharLimit = def.CharLimit
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = def.MaxRows
	}
	if owner == nil {
		owner = model.NewTodoList()
	}
	if log == nil {
		log = logging.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = opts.CharLimit
	// A blinking cursor schedules timer commands forever; keep it steady.
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	keys := newTodoKeys()
	l := list.New(nil, itemDelegate{keys: keys, deleteLabel: opts.DeleteLabel}, 60, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)

	m := TodoListModel{
		owner: owner,
		opts:  opts,
		input: ti,
		rows:  l,
		keys:  keys,
		help:  help.New(),
		log:   log,
	}
	m.refresh()
	return m
}

// Todos is a snapshot of the owner's collection.
func (m TodoListModel) Todos() []model.Todo { return m.owner.Todos() }

// Input is the pending new-item text.
func (m TodoListModel) Input() string { return m.input.Value() }

func (m TodoListModel) Init() tea.Cmd { return nil }

func (m TodoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The owner may have changed outside this widget since the last message.
	m.refresh()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rows.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case IntentMsg:
		m.apply(msg.Intent)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.step(1))
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.step(-1))
		}

		switch m.focus {
		case focusInput:
			if key.Matches(msg, m.keys.Submit) {
				m.submit()
				return m, nil
			}
		case focusAdd:
			if key.Matches(msg, m.keys.Submit) || msg.String() == " " {
				m.submit()
			}
			return m, nil
		case focusRows:
			var cmd tea.Cmd
			m.rows, cmd = m.rows.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit adds the buffered text. Blank input leaves the buffer as typed.
func (m *TodoListModel) submit() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return
	}
	if m.apply(model.Add(text)) {
		m.input.Reset()
	}
}

func (m *TodoListModel) apply(in model.Intent) bool {
	ok := m.owner.Apply(in)
	m.log.Debug("intent applied", "kind", in.Kind.String(), "id", in.ID, "changed", ok)
	m.refresh()
	return ok
}

// refresh rebuilds the rows from the owner and keeps cursor and focus valid.
func (m *TodoListModel) refresh() { m.sync(m.owner.Todos()) }

func (m *TodoListModel) sync(todos []model.Todo) {
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, Item{Todo: t})
	}
	m.rows.SetHeight(max(1, min(len(items), m.opts.MaxRows)))
	m.rows.SetItems(items)
	if n := len(items); n > 0 && m.rows.Index() >= n {
		m.rows.Select(n - 1)
	}
	if len(items) == 0 && m.focus == focusRows {
		m.setFocus(focusInput)
	}
}

func (m *TodoListModel) step(dir int) focusArea {
	n := 3
	if len(m.rows.Items()) == 0 {
		n = 2
	}
	return focusArea((int(m.focus) + dir + n) % n)
}

func (m *TodoListModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.rows.SetDelegate(itemDelegate{
		keys:        m.keys,
		deleteLabel: m.opts.DeleteLabel,
		focused:     f == focusRows,
	})
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m TodoListModel) View() string {
	todos := m.owner.Todos()
	m.sync(todos)
	done, pending := model.Stats(todos)
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render(m.opts.Title),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(todos),
	)

	inputRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.inputView(), " ", button(m.opts.AddLabel, m.focus == focusAdd))

	body := mutedStyle.Render("  " + m.opts.Empty)
	if len(todos) > 0 {
		body = m.rows.View()
	}

	content := header + "\n\n" + inputRow + "\n\n" + body + "\n\n" +
		helpStyle.Render(m.help.View(m.helpKeys()))
	return panelString(content)
}

// inputView shows the configured placeholder while the buffer is empty.
func (m TodoListModel) inputView() string {
	if m.input.Value() == "" {
		return m.input.Prompt + mutedStyle.Render(m.opts.Placeholder)
	}
	return m.input.View()
}

// helpKeys swaps the enter hint depending on what has focus.
func (m TodoListModel) helpKeys() help.KeyMap {
	k := m.keys
	if m.focus == focusRows {
		k.Submit.SetEnabled(false)
	} else {
		k.Toggle.SetEnabled(false)
		k.Delete.SetEnabled(false)
	}
	return k
}
