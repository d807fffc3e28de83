package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior and labels.
type Options struct {
	Empty string // placeholder shown for an empty list
	Log   *slog.Logger
}

// Session is one in-memory todo list and counter driven by text commands.
// Nothing outlives the process.
type Session struct {
	todos   *model.TodoList
	counter *model.Counter
	opt     Options
}

func NewSession(seed int, opt Options) *Session {
	if opt.Empty == "" {
		opt.Empty = "할 일이 없습니다."
	}
	if opt.Log == nil {
		opt.Log = logging.NewNop()
	}
	return &Session{
		todos:   model.NewTodoList(),
		counter: model.NewCounter(seed),
		opt:     opt,
	}
}

func (s *Session) Todos() []model.Todo { return s.todos.Todos() }
func (s *Session) Count() int          { return s.counter.Value() }

// Exec dispatches one command and returns an exit code (0 ok, 1 error, 2 usage).
func (s *Session) Exec(args []string) int {
	if len(args) == 0 {
		return 0
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		group, asJSON := false, false
		for _, f := range a {
			switch f {
			case "--group", "-g":
				group = true
			case "--json":
				asJSON = true
			default:
				ui.Fail("usage: ls [--group] [--json]")
				return 2
			}
		}
		if asJSON {
			return s.doListJSON()
		}
		return s.doList(group)

	case "add":
		// no text at all is the same no-op as blank text
		return s.doAdd(strings.Join(a, " "))

	case "done", "toggle":
		id, ok := parseID(cmd, a)
		if !ok {
			return 2
		}
		return s.apply(model.Toggle(id), "toggled")

	case "rm", "delete":
		id, ok := parseID(cmd, a)
		if !ok {
			return 2
		}
		return s.apply(model.Delete(id), "removed")

	case "inc", "increment":
		s.counter.Increment()
		ui.OK(s.counter.String())
		return 0

	case "dec", "decrement":
		s.counter.Decrement()
		ui.OK(s.counter.String())
		return 0

	case "count":
		fmt.Fprintln(ui.Stdout, s.counter.String())
		return 0
	}

	ui.Fail("unknown command: " + cmd)
	return 2
}

// ExecLine runs one text command. The text after "add" is passed through
// as typed, so inner spacing survives; other commands split on whitespace.
func (s *Session) ExecLine(line string) int {
	line = strings.TrimSpace(line)
	verb, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, rest = line[:i], line[i:]
	}
	if verb == "add" {
		return s.Exec([]string{verb, rest})
	}
	return s.Exec(strings.Fields(line))
}

func parseID(cmd string, a []string) (int, bool) {
	if len(a) != 1 {
		ui.Fail("usage: " + cmd + " <id>")
		return 0, false
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return 0, false
	}
	return n, true
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `Commands (one per line, or as YAML "steps"):
  add <text...>      Add a todo (text can be multiple words)
  done <id>          Toggle completion of the todo with this id
  rm <id>            Remove the todo with this id
  ls [--group]       List todos, optionally grouped by pending/done
  ls --json          Print todos as JSON
  inc | dec          Change the counter by one
  count              Print the counter

Examples:
  add buy milk
  done 1
  rm 1
`)
}

// RunLines executes one command per line. Blank lines and # comments are
// skipped. It stops at the first failing command and returns its code.
func (s *Session) RunLines(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if code := s.ExecLine(line); code != 0 {
			return code, nil
		}
	}
	if err := sc.Err(); err != nil {
		return 1, fmt.Errorf("read commands: %w", err)
	}
	return 0, nil
}

// Script is the YAML form of a command list.
type Script struct {
	CounterSeed *int     `yaml:"counter_seed"`
	Steps       []string `yaml:"steps"`
}

// ParseScript decodes a YAML script. Unknown keys are rejected.
func ParseScript(r io.Reader) (Script, error) {
	var sc Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, errors.New("script: empty document")
		}
		return Script{}, fmt.Errorf("script: %w", err)
	}
	return sc, nil
}

// RunScript applies a parsed script. A counter_seed in the script
// replaces the session's counter before any step runs.
func (s *Session) RunScript(sc Script) int {
	if sc.CounterSeed != nil {
		s.counter = model.NewCounter(*sc.CounterSeed)
	}
	for _, step := range sc.Steps {
		if code := s.ExecLine(step); code != 0 {
			return code
		}
	}
	return 0
}

// -------------- command impls ----------------

func (s *Session) doAdd(text string) int {
	t, ok := s.todos.Add(text)
	s.opt.Log.Debug("intent applied", "kind", model.IntentAdd.String(), "changed", ok)
	if !ok {
		ui.Note("nothing to add")
		return 0
	}
	ui.OK(fmt.Sprintf("added #%d", t.ID))
	return 0
}

// apply reports an unmatched id as a no-op, not a failure.
func (s *Session) apply(in model.Intent, verb string) int {
	ok := s.todos.Apply(in)
	s.opt.Log.Debug("intent applied", "kind", in.Kind.String(), "id", in.ID, "changed", ok)
	if !ok {
		ui.Note(fmt.Sprintf("no todo #%d, nothing changed", in.ID))
		fmt.Fprintln(ui.Stdout, ui.C(ui.Current().Muted, "Hint: run `ls` to see ids"))
		return 0
	}
	ui.OK(fmt.Sprintf("%s #%d", verb, in.ID))
	return 0
}

func (s *Session) doList(group bool) int {
	todos := s.todos.Todos()
	d, p := model.Stats(todos)
	th := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(th.Title, "Todos"),
		ui.C(th.Success, th.SymDone), d,
		ui.C(th.Pending, th.SymPending), p,
		ui.C(th.Accent, "Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(th.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, s.groupLines(todos)...)
	} else {
		lines = append(lines, s.flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(th.Muted, "Tip: add with `add buy milk`"))
	ui.Panel(ui.Stdout, lines)
	return 0
}

func (s *Session) doListJSON() int {
	enc := json.NewEncoder(ui.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.todos.Todos()); err != nil {
		ui.Fail("json: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func (s *Session) flatLines(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{ui.C(ui.Current().Muted, s.opt.Empty)}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if t.Completed {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		text := t.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Dim(fmt.Sprintf("#%-3d", t.ID)), ui.C(color, box), text))
	}
	return out
}

func (s *Session) groupLines(todos []model.Todo) []string {
	var pend, done []model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	section := func(title string, part []model.Todo) []string {
		lines := []string{ui.C(ui.Current().Accent, title)}
		if len(part) == 0 {
			return append(lines, ui.C(ui.Current().Muted, "(none)"))
		}
		return append(lines, s.flatLines(part)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
