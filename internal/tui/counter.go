package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

const (
	incrementLabel = "Increment"
	decrementLabel = "Decrement"
)

// CounterModel is the counter widget: a count line and two controls.
type CounterModel struct {
	counter *model.Counter
	focus   int // 0 = Increment, 1 = Decrement
	keys    counterKeys
	help    help.Model
	log     *slog.Logger
}

func NewCounter(seed int, log *slog.Logger) CounterModel {
	if log == nil {
		log = logging.NewNop()
	}
	return CounterModel{
		counter: model.NewCounter(seed),
		keys:    newCounterKeys(),
		help:    help.New(),
		log:     log,
	}
}

// Value is the current count.
func (m CounterModel) Value() int { return m.counter.Value() }

func (m CounterModel) Init() tea.Cmd { return nil }

func (m CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			m.increment()
		case key.Matches(msg, m.keys.Decrement):
			m.decrement()
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			m.focus = 1 - m.focus
		case key.Matches(msg, m.keys.Press):
			if m.focus == 0 {
				m.increment()
			} else {
				m.decrement()
			}
		}
	}
	return m, nil
}

func (m CounterModel) increment() {
	m.counter.Increment()
	m.log.Debug("counter changed", "op", "increment", "value", m.counter.Value())
}

func (m CounterModel) decrement() {
	m.counter.Decrement()
	m.log.Debug("counter changed", "op", "decrement", "value", m.counter.Value())
}

func (m CounterModel) View() string {
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		button(incrementLabel, m.focus == 0),
		" ",
		button(decrementLabel, m.focus == 1),
	)
	content := titleStyle.Render(m.counter.String()) + "\n\n" +
		controls + "\n\n" +
		helpStyle.Render(m.help.View(m.keys))
	return panelString(content)
}
