package harness

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var h = New(Config{Width: 40, Height: 10})

type echoMsg string

// recorder keeps typed runes and reacts to a few keys with commands.
type recorder struct {
	typed  string
	echoes []string
	width  int
}

func (r recorder) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
	case echoMsg:
		r.echoes = append(r.echoes, string(msg))
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return r, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		case "ctrl+c":
			return r, tea.Quit
		case "s":
			return r, tea.Sequence(
				func() tea.Msg { return echoMsg("1") },
				func() tea.Msg { return echoMsg("2") },
			)
		default:
			r.typed += msg.String()
		}
	}
	return r, nil
}

func (r recorder) View() string {
	return "\x1b[1mtyped:\x1b[0m " + r.typed + "\n" + strings.Join(r.echoes, ",")
}

func TestRenderRunsInitAndSizesModel(t *testing.T) {
	s := h.Render(t, recorder{})
	r := s.Model().(recorder)
	assert.Equal(t, 40, r.width)
	assert.Equal(t, []string{"init"}, r.echoes)
}

func TestTypeAndScreenStripsANSI(t *testing.T) {
	s := h.Render(t, recorder{})
	s.Type("hi there")
	assert.Equal(t, "typed: hi there", s.Lines()[0])
	assert.True(t, s.Contains("typed: hi"))
}

func TestKeepANSI(t *testing.T) {
	raw := New(Config{KeepANSI: true}).Render(t, recorder{})
	assert.Contains(t, raw.Screen(), "\x1b[1m")
}

func TestPressDrainsBatchAndSequence(t *testing.T) {
	s := h.Render(t, recorder{})
	s.Press("enter", "s")
	r := s.Model().(recorder)
	assert.ElementsMatch(t, []string{"init", "a", "b", "1", "2"}, r.echoes)
}

func TestQuitIsRecorded(t *testing.T) {
	s := h.Render(t, recorder{})
	assert.False(t, s.Quit())
	s.Press("ctrl+c")
	assert.True(t, s.Quit())
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, " ", Key("space").String())
	assert.Equal(t, "enter", Key("enter").String())
	assert.Equal(t, "shift+tab", Key("shift+tab").String())
	assert.Equal(t, "x", Key("x").String())
}

func TestNewFillsDefaults(t *testing.T) {
	cfg := New(Config{}).Config()
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLineFindsRow(t *testing.T) {
	s := h.Render(t, recorder{})
	assert.Equal(t, "init", s.Line("ini"))
	assert.Equal(t, "", s.Line("missing"))
}
