// Package harness renders Bubble Tea models in tests and drives them the
// way a user would: key presses, typed text, and whatever commands the
// model emits in response.
package harness

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Config is built once per test suite and handed to New.
type Config struct {
	Width, Height int
	// MaxCmdDepth bounds how many command rounds one interaction may trigger.
	MaxCmdDepth int
	// KeepANSI leaves escape sequences in Screen output.
	KeepANSI bool
}

func DefaultConfig() Config {
	return Config{Width: 80, Height: 24, MaxCmdDepth: 32}
}

type Harness struct {
	cfg Config
}

// New fills zero fields of cfg from DefaultConfig.
func New(cfg Config) *Harness {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.MaxCmdDepth <= 0 {
		cfg.MaxCmdDepth = def.MaxCmdDepth
	}
	return &Harness{cfg: cfg}
}

func (h *Harness) Config() Config { return h.cfg }

// Session is one rendered model plus its interaction history.
type Session struct {
	t     testing.TB
	cfg   Config
	model tea.Model
	quit  bool
	sent  []tea.Msg
}

// Render starts m: Init, a window size message, and any commands they return.
func (h *Harness) Render(t testing.TB, m tea.Model) *Session {
	t.Helper()
	s := &Session{t: t, cfg: h.cfg, model: m}
	t.Cleanup(func() {
		s.model = nil
		s.sent = nil
	})
	s.run(m.Init())
	s.Send(tea.WindowSizeMsg{Width: h.cfg.Width, Height: h.cfg.Height})
	return s
}

// Model is the latest model returned by Update.
func (s *Session) Model() tea.Model { return s.model }

// Quit reports whether the model asked the program to exit.
func (s *Session) Quit() bool { return s.quit }

// Sent lists every message delivered to Update, commands included.
func (s *Session) Sent() []tea.Msg { return s.sent }

// Send delivers msg and drains the resulting commands.
func (s *Session) Send(msg tea.Msg) *Session {
	s.t.Helper()
	s.run(func() tea.Msg { return msg })
	return s
}

// Press sends each key in turn, e.g. Press("tab", "space", "x").
func (s *Session) Press(keys ...string) *Session {
	s.t.Helper()
	for _, k := range keys {
		s.Send(Key(k))
	}
	return s
}

// Type sends text one rune at a time.
func (s *Session) Type(text string) *Session {
	s.t.Helper()
	for _, r := range text {
		if r == ' ' {
			s.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		s.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

// Screen is the current View, without ANSI unless KeepANSI is set.
func (s *Session) Screen() string {
	v := s.model.View()
	if s.cfg.KeepANSI {
		return v
	}
	return ansi.Strip(v)
}

// Lines splits Screen and trims trailing blanks from each line.
func (s *Session) Lines() []string {
	lines := strings.Split(s.Screen(), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " ")
	}
	return lines
}

func (s *Session) Contains(text string) bool {
	return strings.Contains(s.Screen(), text)
}

// Line returns the first screen line containing text, or "".
func (s *Session) Line(text string) string {
	for _, ln := range s.Lines() {
		if strings.Contains(ln, text) {
			return ln
		}
	}
	return ""
}

// run executes cmd and feeds what it produces back into the model,
// breadth first, until nothing is left or the depth limit trips.
func (s *Session) run(cmd tea.Cmd) {
	s.t.Helper()
	queue := []tea.Cmd{cmd}
	for depth := 0; len(queue) > 0; depth++ {
		if depth > s.cfg.MaxCmdDepth {
			s.t.Fatalf("harness: command chain exceeded max depth %d", s.cfg.MaxCmdDepth)
			return
		}
		var next []tea.Cmd
		for _, c := range queue {
			next = append(next, s.exec(c)...)
		}
		queue = next
	}
}

func (s *Session) exec(cmd tea.Cmd) []tea.Cmd {
	s.t.Helper()
	if cmd == nil || s.quit {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		return msg
	case tea.QuitMsg:
		s.quit = true
		s.sent = append(s.sent, msg)
		return nil
	default:
		if seq, ok := asSequence(msg); ok {
			return seq
		}
		s.sent = append(s.sent, msg)
		next, c := s.model.Update(msg)
		s.model = next
		return []tea.Cmd{c}
	}
}
